package routes

import (
	"fyyur-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App,
	venueHandler *handlers.VenueHandler,
	artistHandler *handlers.ArtistHandler,
	showHandler *handlers.ShowHandler,
	genreHandler *handlers.GenreHandler,
	uploadHandler *handlers.UploadHandler,
) {
	venues := app.Group("/venues")
	{
		venues.Get("/", venueHandler.ListVenues)
		venues.Post("/search", venueHandler.SearchVenues)
		venues.Get("/create", venueHandler.CreateVenueForm)
		venues.Post("/create", venueHandler.CreateVenueSubmission)
		venues.Get("/:id", venueHandler.ShowVenue)
		venues.Delete("/:id", venueHandler.DeleteVenue)
		venues.Get("/:id/edit", venueHandler.EditVenueForm)
		venues.Post("/:id/edit", venueHandler.EditVenueSubmission)
	}

	artists := app.Group("/artists")
	{
		artists.Get("/", artistHandler.ListArtists)
		artists.Post("/search", artistHandler.SearchArtists)
		artists.Get("/create", artistHandler.CreateArtistForm)
		artists.Post("/create", artistHandler.CreateArtistSubmission)
		artists.Get("/:id", artistHandler.ShowArtist)
		artists.Delete("/:id", artistHandler.DeleteArtist)
		artists.Get("/:id/edit", artistHandler.EditArtistForm)
		artists.Post("/:id/edit", artistHandler.EditArtistSubmission)
	}

	shows := app.Group("/shows")
	{
		shows.Get("/", showHandler.ListShows)
		shows.Get("/create", showHandler.CreateShowForm)
		shows.Post("/create", showHandler.CreateShowSubmission)
	}

	app.Get("/genres", genreHandler.ListGenres)

	upload := app.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
