package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-intake-backend/controllers"
	interviewquestionprovider "hr-intake-backend/lib/dicts/interview-question"
	apimodels "hr-intake-backend/models/api"
	dictapimodels "hr-intake-backend/models/api/dict"
)

type interviewQuestionDictApiController struct {
	controllers.BaseAPIController
}

func InitInterviewQuestionDictApiRouters(app *fiber.App) {
	controller := interviewQuestionDictApiController{}
	app.Route("interview_question", func(router fiber.Router) {
		router.Post("list", controller.questionList)
		router.Post("", controller.questionCreate)
		router.Put(":id", controller.questionUpdate)
		router.Get(":id", controller.questionGet)
		router.Delete(":id", controller.questionDelete)
	})
}

// @Summary Create an interview question
// @Tags Dictionary. Interview questions
// @Description Creates an interview question record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.InterviewQuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/interview_question [post]
func (c *interviewQuestionDictApiController) questionCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.InterviewQuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewquestionprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create interview question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update an interview question
// @Tags Dictionary. Interview questions
// @Description Updates an interview question record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.InterviewQuestionData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/interview_question/{id} [put]
func (c *interviewQuestionDictApiController) questionUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.InterviewQuestionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewquestionprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update interview question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get an interview question
// @Tags Dictionary. Interview questions
// @Description Returns one interview question record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.InterviewQuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/interview_question/{id} [get]
func (c *interviewQuestionDictApiController) questionGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := interviewquestionprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get interview question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary List interview questions
// @Tags Dictionary. Interview questions
// @Description Lists all interview question records, including inactive ones
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.InterviewQuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/interview_question/list [post]
func (c *interviewQuestionDictApiController) questionList(ctx *fiber.Ctx) error {
	list, err := interviewquestionprovider.Instance.List(false)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interview questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete an interview question
// @Tags Dictionary. Interview questions
// @Description Deletes an interview question record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/interview_question/{id} [delete]
func (c *interviewQuestionDictApiController) questionDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewquestionprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete interview question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
