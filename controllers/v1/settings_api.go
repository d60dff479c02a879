package apiv1

import (
	"io"

	"hr-intake-backend/controllers"
	filestorage "hr-intake-backend/lib/file-storage"
	settingsprovider "hr-intake-backend/lib/settings"
	"hr-intake-backend/models"
	apimodels "hr-intake-backend/models/api"
	dictapimodels "hr-intake-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Put("set", controller.set)
		router.Post("logo", controller.uploadLogo)
	})
}

// @Summary System settings
// @Tags Settings
// @Description Returns all system settings as a key value map
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=map[string]string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/settings/list [get]
func (c *settingsApiController) list(ctx *fiber.Ctx) error {
	settings, err := settingsprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(settings))
}

// @Summary Change a setting
// @Tags Settings
// @Description Creates or overwrites one system setting
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.SettingData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/settings/set [put]
func (c *settingsApiController) set(ctx *fiber.Ctx) error {
	var payload dictapimodels.SettingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := settingsprovider.Instance.Set(payload.Key, payload.Value); err != nil {
		logger := log.WithField("key", payload.Key)
		return c.SendError(ctx, logger, err, "failed to store setting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload the company logo
// @Tags Settings
// @Description Stores the logo image and points the logo setting at its URL
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/settings/logo [post]
func (c *settingsApiController) uploadLogo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ไม่พบไฟล์ในคำขอ"))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded logo")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded logo")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	url, err := filestorage.Instance.Upload(ctx.UserContext(), filestorage.KindLogo, file.Filename, fileBody, file.Header.Get("Content-Type"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store logo")
	}
	if err = settingsprovider.Instance.Set(models.SettingAppLogo, url); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store logo setting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(url))
}
