package log

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
}

// SetOutput redirects the app log (e.g. stdout + file multiwriter).
func SetOutput(w io.Writer) { base.SetOutput(w) }

func write(level logrus.Level, c *fiber.Ctx, action string, err error, fields map[string]any) {
	f := logrus.Fields{"action": action}
	for k, v := range fields {
		f[k] = v
	}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	e := base.WithFields(f)
	if err != nil {
		e = e.WithError(err)
	}
	switch level {
	case logrus.ErrorLevel:
		e.Error(action)
	case logrus.WarnLevel:
		e.Warn(action)
	default:
		e.Info(action)
	}
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, c, action, nil, fields)
}

// Audit records state-changing user actions (login, checkout, listing edits).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, c, action, nil, fields)
}

// Security records rejected or suspicious requests.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.WarnLevel, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(logrus.ErrorLevel, c, action, err, fields)
}
