package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-intake-backend/controllers"
	jobpositionprovider "hr-intake-backend/lib/dicts/job-position"
	apimodels "hr-intake-backend/models/api"
	dictapimodels "hr-intake-backend/models/api/dict"
)

type jobPositionDictApiController struct {
	controllers.BaseAPIController
}

func InitJobPositionDictApiRouters(app *fiber.App) {
	controller := jobPositionDictApiController{}
	app.Route("job_position", func(router fiber.Router) {
		router.Post("list", controller.jobPositionList)
		router.Post("", controller.jobPositionCreate)
		router.Put(":id", controller.jobPositionUpdate)
		router.Get(":id", controller.jobPositionGet)
		router.Delete(":id", controller.jobPositionDelete)
	})
}

// @Summary Create a job position
// @Tags Dictionary. Job positions
// @Description Creates a job position record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.JobPositionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/job_position [post]
func (c *jobPositionDictApiController) jobPositionCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobPositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobpositionprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job position")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a job position
// @Tags Dictionary. Job positions
// @Description Updates a job position record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.JobPositionData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/job_position/{id} [put]
func (c *jobPositionDictApiController) jobPositionUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.JobPositionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobpositionprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job position")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a job position
// @Tags Dictionary. Job positions
// @Description Returns one job position record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.JobPositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/job_position/{id} [get]
func (c *jobPositionDictApiController) jobPositionGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := jobpositionprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job position")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary List job positions
// @Tags Dictionary. Job positions
// @Description Lists all job position records, including inactive ones
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobPositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/job_position/list [post]
func (c *jobPositionDictApiController) jobPositionList(ctx *fiber.Ctx) error {
	list, err := jobpositionprovider.Instance.List(false)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job positions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete a job position
// @Tags Dictionary. Job positions
// @Description Deletes a job position record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/job_position/{id} [delete]
func (c *jobPositionDictApiController) jobPositionDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobpositionprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job position")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
