package publicapi

import (
	"hr-intake-backend/controllers"
	"hr-intake-backend/lib/applicant"
	interviewquestionprovider "hr-intake-backend/lib/dicts/interview-question"
	jobpositionprovider "hr-intake-backend/lib/dicts/job-position"
	settingsprovider "hr-intake-backend/lib/settings"
	"hr-intake-backend/lib/wizard"
	apimodels "hr-intake-backend/models/api"
	applicantapimodels "hr-intake-backend/models/api/applicant"

	"github.com/gofiber/fiber/v2"
)

type publicApplicationApiController struct {
	controllers.BaseAPIController
}

func InitPublicApplicationApiRouters(app *fiber.App) {
	controller := publicApplicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("validate-step", controller.validateStep)
		router.Post("submit", controller.submit)
		router.Get("positions", controller.positions)
		router.Get("questions", controller.questions)
		router.Get("company", controller.company)
	})
}

// @Summary Validate one wizard step
// @Tags Application form
// @Description Re-runs the server side validation of a single form step
// @Param	body	body	applicantapimodels.ValidateStepRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ValidateStepResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/validate-step [post]
func (c *publicApplicationApiController) validateStep(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ValidateStepRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	flags, msg := wizard.ValidateStep(wizard.Step(payload.Step), payload.Data)
	resp := applicantapimodels.ValidateStepResponse{
		Valid: len(flags) == 0,
	}
	if len(flags) > 0 {
		resp.Errors = flags
		resp.Message = msg
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit the application
// @Tags Application form
// @Description Persists the finished application together with the signed consent
// @Param	body	body	applicantapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/submit [post]
func (c *publicApplicationApiController) submit(ctx *fiber.Ctx) error {
	var payload applicantapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicant.Instance.SubmitWithConsent(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Open job positions
// @Tags Application form
// @Description Lists the active job positions for the position pickers
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobPositionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/positions [get]
func (c *publicApplicationApiController) positions(ctx *fiber.Ctx) error {
	list, err := jobpositionprovider.Instance.List(true)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job positions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Interview questions
// @Tags Application form
// @Description Lists the active interview questions shown on the video step
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.InterviewQuestionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/questions [get]
func (c *publicApplicationApiController) questions(ctx *fiber.Ctx) error {
	list, err := interviewquestionprovider.Instance.List(true)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interview questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Company info
// @Tags Application form
// @Description Company name and logo shown on the form header and documents
// @Success 200 {object} apimodels.Response{data=docproject.Company}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/company [get]
func (c *publicApplicationApiController) company(ctx *fiber.Ctx) error {
	company, err := settingsprovider.Instance.Company()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load company settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(company))
}
