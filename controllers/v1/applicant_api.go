package apiv1

import (
	"fmt"
	"time"

	"hr-intake-backend/controllers"
	"hr-intake-backend/lib/applicant"
	xlsexport "hr-intake-backend/lib/export/xls"
	apimodels "hr-intake-backend/models/api"
	applicantapimodels "hr-intake-backend/models/api/applicant"
	dbmodels "hr-intake-backend/models/db"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Put("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("review", controller.review)
			idRoute.Put("status", controller.status)
		})
	})
}

// @Summary Applicant list
// @Tags Applicants
// @Description Lists applicants filtered by submission date, status or a search string
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dbmodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload dbmodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicant.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applicants")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applicant card
// @Tags Applicants
// @Description Returns one applicant with the full application data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicant.Instance.GetByID(id)
	if err != nil {
		logger := log.WithField("applicant_id", id)
		return c.SendError(ctx, logger, err, "failed to get applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Review an application
// @Tags Applicants
// @Description Stores the review decisions and any corrected application fields
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant ID"
// @Param	body	body	applicantapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/applicant/{id}/review [put]
func (c *applicantApiController) review(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.Review(id, payload); err != nil {
		logger := log.WithField("applicant_id", id)
		return c.SendError(ctx, logger, err, "failed to review applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change applicant status
// @Tags Applicants
// @Description Moves the applicant along the intake pipeline
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant ID"
// @Param	body	body	applicantapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/applicant/{id}/status [put]
func (c *applicantApiController) status(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.StatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.UpdateStatus(id, payload.Status); err != nil {
		logger := log.WithField("applicant_id", id)
		return c.SendError(ctx, logger, err, "failed to change applicant status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export applicants to Excel
// @Tags Applicants
// @Description Exports the filtered applicant list as an xlsx file
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dbmodels.ApplicantFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/applicant/export [put]
func (c *applicantApiController) export(ctx *fiber.Ctx) error {
	var payload dbmodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicant.Instance.ListRecords(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicants for export")
	}
	data, err := xlsexport.Instance.ExportApplicantList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applicants to Excel")
	}
	fileName := fmt.Sprintf("applicants-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
