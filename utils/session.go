package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStart istek için session'ı açar. Store, middleware tarafından
// Locals("session_store") altına konmuş olmalıdır.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return id, nil
}

// GetIsSystemFromSession oturumdaki kullanıcının sistem yetkisini döndürür.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get("is_system").(bool)
	if !ok {
		return false, errors.New("oturumda yetki bilgisi yok")
	}
	return isSystem, nil
}

// SetUserSession giriş sonrası oturum alanlarını yazar.
func SetUserSession(sess *session.Session, userID uint, userName string, isSystem bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", userName)
	sess.Set("is_system", isSystem)
	return sess.Save()
}

// DestroySession oturumu sonlandırır.
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
