package endpoints

import (
	"boardhub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterBoardsEndpoints(srv)
	RegisterListsEndpoints(srv)
	RegisterItemsEndpoints(srv)
	RegisterCommentsEndpoints(srv)
	RegisterLabelsEndpoints(srv)
	RegisterAttachmentsEndpoints(srv)
	RegisterNotificationsEndpoints(srv)
	RegisterProjectsEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterHealthEndpoint(srv)
}
