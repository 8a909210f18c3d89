package handlers

import (
	"errors"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/pkg/flashmessages"
	"formsayfa.link/pkg/renderer"
	"formsayfa.link/services"
	"formsayfa.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler panel giriş/çıkış işlemleri.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/dashboard/forms", fiber.StatusFound)
	}
	renderData := fiber.Map{"Title": "Giriş"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/login", "layouts/main", renderData)
}

// Login e-posta/şifre doğrulayıp oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login: doğrulama hatası", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "E-posta veya şifre hatalı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem); err != nil {
		configslog.Log.Error("Login: session yazılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID %d)", user.Email, user.ID)
	return c.Redirect("/dashboard/forms", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		_ = utils.DestroySession(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
