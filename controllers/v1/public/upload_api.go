package publicapi

import (
	"io"

	"hr-intake-backend/controllers"
	filestorage "hr-intake-backend/lib/file-storage"
	apimodels "hr-intake-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicUploadApiController struct {
	controllers.BaseAPIController
}

func InitPublicUploadApiRouters(app *fiber.App) {
	controller := publicUploadApiController{}
	app.Route("upload", func(router fiber.Router) {
		router.Post("photo", controller.uploadPhoto)
		router.Post("signature", controller.uploadSignature)
	})
}

// @Summary Upload the applicant photo
// @Tags Uploads
// @Description Stores the photo and returns its public URL
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/upload/photo [post]
func (c *publicUploadApiController) uploadPhoto(ctx *fiber.Ctx) error {
	return c.upload(ctx, filestorage.KindPhoto)
}

// @Summary Upload a signature image
// @Tags Uploads
// @Description Stores the drawn signature and returns its public URL
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/upload/signature [post]
func (c *publicUploadApiController) uploadSignature(ctx *fiber.Ctx) error {
	return c.upload(ctx, filestorage.KindSignature)
}

func (c *publicUploadApiController) upload(ctx *fiber.Ctx, kind filestorage.Kind) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ไม่พบไฟล์ในคำขอ"))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	url, err := filestorage.Instance.Upload(ctx.UserContext(), kind, file.Filename, fileBody, file.Header.Get("Content-Type"))
	if err != nil {
		logger := log.WithField("file_name", file.Filename)
		return c.SendError(ctx, logger, err, "failed to store uploaded file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(url))
}
