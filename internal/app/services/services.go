// Package services holds the business logic behind the HTTP controllers.
//
// Services defined in this package:
//   - AuthService: registration, login, refresh token rotation, profile
//   - CatalogService: majors, colleges, course options and course search
//   - PlanService: plan generation and semester suggestions
//   - ScheduleService: saved schedules of the authenticated user
package services
