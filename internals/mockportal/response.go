package mockportal

import "github.com/gofiber/fiber/v2"

// Error mengirim respons gagal dengan pesan untuk ditampilkan klien.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// Success mengirim respons 200 dengan payload tambahan.
func Success(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
