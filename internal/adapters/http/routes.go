package http

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the record API on api, normally the /api group
func RegisterRoutes(api *echo.Group, projects *ProjectHandler, incomes *IncomeHandler) {
	projectGroup := api.Group("/projects")
	projectGroup.GET("", projects.ListProjects)
	projectGroup.POST("", projects.CreateProject)
	projectGroup.PUT("/:id", projects.UpdateProject)
	projectGroup.DELETE("/:id", projects.DeleteProject)

	incomeGroup := api.Group("/incomes")
	incomeGroup.GET("", incomes.ListIncomes)
	incomeGroup.POST("", incomes.CreateIncome)
	incomeGroup.GET("/summary", incomes.GetSummary)
	incomeGroup.DELETE("/:id", incomes.DeleteIncome)
}
