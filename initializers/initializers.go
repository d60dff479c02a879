package initializers

import (
	"context"
	"hr-intake-backend/config"
	"hr-intake-backend/fiberlog"
	adminpanelhandler "hr-intake-backend/lib/admin-panel"
	adminpanelauthhandler "hr-intake-backend/lib/admin-panel/auth"
	"hr-intake-backend/lib/applicant"
	interviewquestionprovider "hr-intake-backend/lib/dicts/interview-question"
	jobpositionprovider "hr-intake-backend/lib/dicts/job-position"
	xlsexport "hr-intake-backend/lib/export/xls"
	"hr-intake-backend/lib/pdfdoc"
	settingsprovider "hr-intake-backend/lib/settings"
	connectionhub "hr-intake-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	settingsprovider.NewHandler()
	jobpositionprovider.NewHandler()
	interviewquestionprovider.NewHandler()
	adminpanelauthhandler.NewHandler()
	adminpanelhandler.NewHandler()
	applicant.NewHandler()
	pdfdoc.NewHandler()
	xlsexport.NewHandler()
}
