package expensefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/internal/api/controllers"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideExpenseTripRepo, provideExpenseRepo,
	provideExpenseTripService, provideExpenseService,
	provideExpenseTripController, provideExpenseController)

func provideExpenseTripRepo(db *gorm.DB) repositories.ExpenseTripRepository {
	return repositories.NewExpenseTripRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseTripService(
	expenseTripRepo repositories.ExpenseTripRepository,
	expenseRepo repositories.ExpenseRepository) services.ExpenseTripServiceInterface {
	return services.NewExpenseTripService(expenseTripRepo, expenseRepo)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	membership services.MembershipService) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, membership)
}

func provideExpenseTripController(expenseTripService services.ExpenseTripServiceInterface) *controllers.ExpenseTripController {
	return controllers.NewExpenseTripController(expenseTripService)
}

func provideExpenseController(expenseService services.ExpenseServiceInterface) *controllers.ExpenseController {
	return controllers.NewExpenseController(expenseService)
}
