// Package handlers is the navigation shell: one Fiber route per screen
// or action, each driving a fresh view model (a request is a mount, the
// client keeps no state between page loads). Responses carry the view
// state plus any notifications as JSON; presenting them is the
// browser's job.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"katalog/internal/notify"
)

// requestNotifier records notifications for the response body and
// mirrors them into the application log.
func requestNotifier(rec *notify.Recorder, log *logrus.Logger) *notify.Notifier {
	return notify.New(notify.Fanout(rec, notify.NewLogSink(log)))
}

// confirmFromQuery adapts the browser-side confirmation prompt: delete
// endpoints receive the user's answer as a confirm query flag.
func confirmFromQuery(c *fiber.Ctx) func(string) bool {
	confirmed := c.QueryBool("confirm")
	return func(string) bool { return confirmed }
}

// parseID reads a positive numeric id from a route parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// mutationStatus picks a response status from the recorded
// notifications after a failed form submit or view action: a validation
// warning is the client's fault, anything else is the backend's.
func mutationStatus(rec *notify.Recorder) int {
	for _, n := range rec.Notifications {
		if n.Severity == notify.SeverityWarning {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusBadGateway
}
