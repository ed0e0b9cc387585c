package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"negociosHorarios/internal/modules/hours/application/usecase"
	"negociosHorarios/internal/modules/hours/domain"
	realtime "negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/modules/realtime/infrastructure"
)

const clientSendBuffer = 8

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewStatusWebsocketHandler exposes /ws/hours/:id. The client is subscribed to the listing's
// badge topic in the requested language (?lang) and receives the current status right away.
func NewStatusWebsocketHandler(hub *infrastructure.Hub, hours *usecase.HoursUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		listingID := strings.TrimSpace(c.Param("id"))
		if listingID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing listing id")
		}
		locale := hours.Locale()
		if lang := strings.TrimSpace(c.QueryParam("lang")); lang != "" {
			locale = domain.LocaleByName(lang)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("hours ws upgrade failed", slog.String("listingId", listingID), slog.String("ip", c.RealIP()), slog.Any("error", err))
			return err
		}

		clientID := uuid.NewString()
		client := infrastructure.NewClient(hub, conn, clientID, listingID, locale.Name(), clientSendBuffer, refreshCommand(hours, locale))
		hub.AttachClient(client, []string{realtime.StatusTopic(listingID, locale.Name())})

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(&realtime.Message{
			Topic:      realtime.TopicSystemConnected,
			Entity:     realtime.SystemEntity,
			Action:     realtime.ActionConnected,
			ResourceID: listingID,
			Metadata:   map[string]string{"clientId": clientID, "lang": locale.Name()},
			Timestamp:  time.Now().UTC(),
		})
		pushStatus(c.Request().Context(), hours, client, listingID, locale)

		slog.Info("hours ws connected", slog.String("clientId", clientID), slog.String("listingId", listingID), slog.String("ip", c.RealIP()))
		return nil
	}
}

// refreshCommand answers {"action":"refresh"} with the current badge of the requested listing,
// or of the listing the socket was opened for.
func refreshCommand(hours *usecase.HoursUseCase, locale domain.Locale) infrastructure.CommandHandler {
	return func(ctx context.Context, client *infrastructure.Client, cmd infrastructure.Command) {
		if !strings.EqualFold(strings.TrimSpace(cmd.Action), "refresh") {
			slog.Debug("hours ws command ignored", slog.String("clientId", client.ID()), slog.String("action", cmd.Action))
			return
		}
		listingID := strings.TrimSpace(cmd.ListingID)
		if listingID == "" {
			listingID = client.ListingID()
		}
		pushStatus(ctx, hours, client, listingID, locale)
	}
}

func pushStatus(ctx context.Context, hours *usecase.HoursUseCase, client *infrastructure.Client, listingID string, locale domain.Locale) {
	msg, _, err := hours.StatusMessage(ctx, listingID, locale)
	if err != nil {
		slog.Warn("hours ws status failed", slog.String("clientId", client.ID()), slog.String("listingId", listingID), slog.Any("error", err))
		return
	}
	client.SendDomainMessage(msg)
}
