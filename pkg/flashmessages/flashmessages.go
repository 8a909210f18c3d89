package flashmessages

import (
	"formsayfa.link/utils"

	"github.com/gofiber/fiber/v2"
)

// Flash mesaj anahtarları. Mesajlar session'da bir sonraki isteğe kadar
// taşınır, okunduklarında silinir.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// Messages bir isteğe taşınan flash mesajlar.
type Messages struct {
	Success string
	Error   string
}

// SetFlashMessage verilen anahtara mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages bekleyen mesajları okur ve session'dan temizler.
func GetFlashMessages(c *fiber.Ctx) Messages {
	var msgs Messages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return msgs
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	_ = sess.Save()
	return msgs
}
