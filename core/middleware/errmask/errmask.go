package errmask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"media-gallery/core/logger"
	"media-gallery/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PathPlaceholder replaces absolute paths in debug details.
const PathPlaceholder = "[path removed]"

// pathPattern matches absolute Unix paths and Windows drive paths.
var pathPattern = regexp.MustCompile(`(?i)(/[^ ]+)+|[A-Z]:\\[^\s]+`)

var genericMarkers = []string{"internal error", "report id", "see exception log for details"}

// Config configures the error handler.
type Config struct {
	// Debug appends sanitized details of the original error to generic 5xx messages.
	Debug bool
	// Logger receives every unexpected error in full.
	Logger *zap.Logger
}

// IsGeneric reports whether message is one of the opaque server error messages.
func IsGeneric(message string) bool {
	normalized := strings.ToLower(message)
	for _, marker := range genericMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// Sanitize strips absolute file paths from message.
func Sanitize(message string) string {
	return strings.TrimSpace(pathPattern.ReplaceAllString(message, PathPlaceholder))
}

// Mask returns the message sent to the client. Generic messages of responses
// with status >= 500 get the sanitized original appended.
func Mask(status int, masked, original string) string {
	if status >= fiber.StatusInternalServerError && IsGeneric(masked) {
		return masked + " | debug: " + Sanitize(original)
	}
	return masked
}

// New returns a fiber.ErrorHandler. *fiber.Error values keep their status and
// message; anything else becomes a 500 with a generic message referencing the
// ray id.
func New(cfg Config) fiber.ErrorHandler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		rid := rayid.Get(c)
		message := fmt.Sprintf("Internal Error. Details are available in the server log. Report ID: %s", rid)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error("Request failed", zap.Int("status", status), zap.Error(err))
			if cfg.Debug {
				message = Mask(status, message, err.Error())
			}
		}

		return c.Status(status).JSON(fiber.Map{
			"error":  message,
			"ray_id": rid,
		})
	}
}
