package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-intake-backend/controllers"
	handler "hr-intake-backend/lib/admin-panel"
	adminpanelauthhandler "hr-intake-backend/lib/admin-panel/auth"
	"hr-intake-backend/middleware"
	apimodels "hr-intake-backend/models/api"
	adminpanelapimodels "hr-intake-backend/models/api/admin-panel"
	authapimodels "hr-intake-backend/models/api/auth"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	user := fiber.New()
	app.Mount("/user", user)
	user.Use(middleware.AuthorizationRequired())
	user.Get("get/:userID", controller.userGet)
	user.Post("create", controller.userCreate)
	user.Put("update/:userID", controller.userUpdate)
	user.Delete("delete/:userID", controller.userDelete)
	user.Post("list", controller.userList)
}

// @Summary HR user login
// @Tags Admin panel
// @Description Authenticates an HR user and returns a JWT
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/login [post]
func (a *adminApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create an HR user
// @Tags Admin panel. Users
// @Description Creates an HR panel user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	adminpanelapimodels.User	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/create [post]
func (a *adminApiController) userCreate(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.User
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.CreateUser(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update an HR user
// @Tags Admin panel. Users
// @Description Updates an HR panel user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   userID	path	string	true	"user ID"
// @Param	body	body	adminpanelapimodels.UserUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/update/{userID} [put]
func (a *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ไม่ได้ระบุรหัสผู้ใช้"))
	}
	var payload adminpanelapimodels.UserUpdate
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err := handler.Instance.UpdateUser(value, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete an HR user
// @Tags Admin panel. Users
// @Description Deletes an HR panel user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   userID	path	string	true	"user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/delete/{userID} [delete]
func (a *adminApiController) userDelete(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ไม่ได้ระบุรหัสผู้ใช้"))
	}
	err := handler.Instance.DeleteUser(value)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get an HR user
// @Tags Admin panel. Users
// @Description Returns one HR panel user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   userID	path	string	true	"user ID"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/get/{userID} [get]
func (a *adminApiController) userGet(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ไม่ได้ระบุรหัสผู้ใช้"))
	}

	user, err := handler.Instance.GetUser(value)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary List HR users
// @Tags Admin panel. Users
// @Description Lists all HR panel users
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/list [post]
func (a *adminApiController) userList(ctx *fiber.Ctx) error {
	users, err := handler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(users))
}
