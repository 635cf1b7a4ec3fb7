package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	OpenEvent(c *ginext.Context)
	CloseEvent(c *ginext.Context)
	JoinWaitlist(c *ginext.Context)
	CancelEntry(c *ginext.Context)
	Draw(c *ginext.Context)
	Decide(c *ginext.Context)
	Enroll(c *ginext.Context)
	ListEntries(c *ginext.Context)
	GetStatusCounts(c *ginext.Context)
	CreateEntrant(c *ginext.Context)
	ListEntrants(c *ginext.Context)
	GetEntrantNotifications(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/open", h.OpenEvent)
		api.POST("/events/:id/close", h.CloseEvent)

		// Waiting list
		api.POST("/events/:id/waitlist", h.JoinWaitlist)
		api.DELETE("/events/:id/waitlist/:entrant_id", h.CancelEntry)
		api.POST("/events/:id/draws", h.Draw)
		api.POST("/events/:id/entries/:entrant_id/decision", h.Decide)
		api.POST("/events/:id/entries/:entrant_id/enroll", h.Enroll)
		api.GET("/events/:id/entries", h.ListEntries)
		api.GET("/events/:id/counts", h.GetStatusCounts)

		// Entrants
		api.POST("/entrants", h.CreateEntrant)
		api.GET("/entrants", h.ListEntrants)
		api.GET("/entrants/:id/notifications", h.GetEntrantNotifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
