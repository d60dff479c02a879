package apiv1

import (
	"hr-intake-backend/controllers"
	"hr-intake-backend/lib/pdfdoc"
	apimodels "hr-intake-backend/models/api"
	documentapimodels "hr-intake-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("document", func(router fiber.Router) {
		router.Get("list/:id", controller.listByApplicant)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("review", controller.review)
			idRoute.Get("download", controller.download)
		})
	})
}

// @Summary Document card
// @Tags Documents
// @Description Returns one statutory document with its payload and status
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"document ID"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/document/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := pdfdoc.Instance.Get(id)
	if err != nil {
		logger := log.WithField("document_id", id)
		return c.SendError(ctx, logger, err, "failed to get document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Documents of an applicant
// @Tags Documents
// @Description Lists all statutory documents of one applicant
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/document/list/{id} [get]
func (c *documentApiController) listByApplicant(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := pdfdoc.Instance.ListByApplicant(applicantID)
	if err != nil {
		logger := log.WithField("applicant_id", applicantID)
		return c.SendError(ctx, logger, err, "failed to list applicant documents")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Review a document
// @Tags Documents
// @Description Approves or completes a submitted document, optionally merging officer fields
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"document ID"
// @Param	body	body	documentapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/document/{id}/review [put]
func (c *documentApiController) review(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload documentapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = pdfdoc.Instance.Review(id, payload); err != nil {
		logger := log.WithField("document_id", id)
		return c.SendError(ctx, logger, err, "failed to review document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download a document as PDF
// @Tags Documents
// @Description Renders the document and returns it as a PDF attachment
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/document/{id}/download [get]
func (c *documentApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	artifact, err := pdfdoc.Instance.Export(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("document_id", id)
		return c.SendError(ctx, logger, err, "failed to render document")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+artifact.Filename+`"`)
	return ctx.Status(fiber.StatusOK).Send(artifact.Bytes)
}
