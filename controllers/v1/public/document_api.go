package publicapi

import (
	"hr-intake-backend/controllers"
	"hr-intake-backend/lib/pdfdoc"
	apimodels "hr-intake-backend/models/api"
	documentapimodels "hr-intake-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicDocumentApiController struct {
	controllers.BaseAPIController
}

func InitPublicDocumentApiRouters(app *fiber.App) {
	controller := publicDocumentApiController{}
	app.Route("document", func(router fiber.Router) {
		router.Post("save-draft", controller.saveDraft)
		router.Post("submit", controller.submit)
		router.Get("list/:id", controller.listByApplicant)
		router.Get(":id/download", controller.download)
		router.Get(":id/preview", controller.preview)
	})
}

// @Summary Save a document draft
// @Tags Statutory documents
// @Description Stores the current form state of one statutory document without submitting it
// @Param	body	body	documentapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/document/save-draft [post]
func (c *publicDocumentApiController) saveDraft(ctx *fiber.Ctx) error {
	var payload documentapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := pdfdoc.Instance.SaveDraft(payload)
	if err != nil {
		return c.SendError(ctx, c.docLogger(payload), err, "failed to save document draft")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Submit a document
// @Tags Statutory documents
// @Description Files one statutory document for review
// @Param	body	body	documentapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/document/submit [post]
func (c *publicDocumentApiController) submit(ctx *fiber.Ctx) error {
	var payload documentapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := pdfdoc.Instance.Submit(payload)
	if err != nil {
		return c.SendError(ctx, c.docLogger(payload), err, "failed to submit document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Documents of an applicant
// @Tags Statutory documents
// @Description Lists all statutory documents of one applicant with their statuses
// @Param   id	path	string	true	"applicant ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/document/list/{id} [get]
func (c *publicDocumentApiController) listByApplicant(ctx *fiber.Ctx) error {
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

// @Summary Download a document as PDF
// @Tags Statutory documents
// @Description Renders the document and returns it as a PDF attachment
// @Param   id	path	string	true	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/document/{id}/download [get]
func (c *publicDocumentApiController) download(ctx *fiber.Ctx) error {
	return c.sendPdf(ctx, "attachment")
}

// @Summary Preview a document as PDF
// @Tags Statutory documents
// @Description Renders the document and returns it for inline display
// @Param   id	path	string	true	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/document/{id}/preview [get]
func (c *publicDocumentApiController) preview(ctx *fiber.Ctx) error {
	return c.sendPdf(ctx, "inline")
}

func (c *publicDocumentApiController) sendPdf(ctx *fiber.Ctx, disposition string) error {
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
	ctx.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+artifact.Filename+`"`)
	return ctx.Status(fiber.StatusOK).Send(artifact.Bytes)
}

func (c *publicDocumentApiController) docLogger(payload documentapimodels.SubmitRequest) *log.Entry {
	return log.
		WithField("applicant_id", payload.ApplicantID).
		WithField("pdf_type", string(payload.PdfType))
}
