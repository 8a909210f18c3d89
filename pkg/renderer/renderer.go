package renderer

import (
	"net/http"

	"formsayfa.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View veri anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash mesajları render verisine işler.
func SetFlashMessages(data fiber.Map, msgs flashmessages.Messages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
}

// Render ortak locals'ları (oturum bilgisi) ekleyip view'ı layout ile
// render eder. status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		data["LoggedIn"] = true
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
