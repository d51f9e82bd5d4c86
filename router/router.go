package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"venue-webapp/handlers"
	"venue-webapp/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/", logger.New())
	api.Get("/health", h.Health)
	api.Get("/venue", h.GetVenue)

	//Auth
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	//Shows
	shows := api.Group("/shows")
	shows.Get("/", h.GetShows)
	shows.Get("/genres", h.GetGenres)
	shows.Get("/upcoming", h.GetUpcomingShows)
	shows.Get("/:id", h.GetShow)
	shows.Get("/:id/photos", h.GetShowPhotos)
	shows.Post("/:id/photos", middleware.Authorize(h.SigningKey), h.SubmitPhoto)

	//Calendar and archive
	api.Get("/calendar", h.GetShowsOnDate)
	api.Get("/calendar/:year/:month", h.GetShowDatesInMonth)
	api.Get("/archive", h.GetArchive)

	//Newsletter
	newsletter := api.Group("/newsletter")
	newsletter.Post("/", h.Subscribe)
	newsletter.Post("/unsubscribe", h.Unsubscribe)
	newsletter.Put("/preferences", h.UpdatePreferences)

	//Artists and promoters
	api.Post("/submissions", h.SubmitArtist)
	api.Post("/booking-requests", h.RequestBooking)

	//Store
	shop := api.Group("/store")
	shop.Get("/products", h.GetProducts)
	shop.Get("/categories", h.GetCategories)

	api.Get("/media/:name", h.GetMedia)

	//Account
	me := api.Group("/me", middleware.Authorize(h.SigningKey))
	me.Get("/", h.GetProfile)
	me.Patch("/", h.UpdateProfile)
	me.Get("/favorites", h.GetFavorites)
	me.Put("/favorites/:showId", h.AddFavorite)
	me.Delete("/favorites/:showId", h.RemoveFavorite)
	me.Get("/tickets", h.GetTickets)
	me.Post("/tickets", h.PurchaseTickets)
	me.Patch("/tickets/:ticketId/cancel", h.CancelTicket)
	me.Post("/newsletter/toggle", h.ToggleNewsletter)
	me.Get("/cart", h.GetCart)
	me.Post("/cart", h.AddToCart)
	me.Delete("/cart", h.ClearCart)
	me.Delete("/cart/:cartId", h.RemoveFromCart)

	//Admin
	admin := api.Group("/admin", middleware.Authorize(h.SigningKey), middleware.RequireAdmin())
	admin.Post("/shows", h.CreateShow)
	admin.Put("/shows/:id", h.ReplaceShow)
	admin.Patch("/shows/:id", h.UpdateShow)
	admin.Delete("/shows/:id", h.DeleteShow)
	admin.Post("/shows/:id/image", h.UploadShowImage)
	admin.Get("/shows/:id/sales", h.GetShowSales)
	admin.Get("/newsletter", h.GetSubscribers)
	admin.Get("/newsletter/stats", h.GetNewsletterStats)
	admin.Get("/announcements", h.GetAnnouncements)
	admin.Get("/submissions", h.GetArtistSubmissions)
	admin.Patch("/submissions/:id/status", h.SetArtistSubmissionStatus)
	admin.Get("/booking-requests", h.GetBookingRequests)
	admin.Patch("/booking-requests/:id/status", h.SetBookingRequestStatus)
	admin.Get("/photos/pending", h.GetPendingPhotos)
	admin.Patch("/photos/:id/approve", h.ApprovePhoto)
	admin.Delete("/photos/:id", h.DeletePhoto)
}
