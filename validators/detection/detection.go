package detectionValidator

import (
	"path/filepath"
	"strings"

	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

// Analyze validates the uploaded scan before the controller runs inference.
func Analyze() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("scan")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "MRI scan image is required!", nil)
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only PNG and JPG images are supported!", nil)
		}

		return c.Next()
	}
}
