package dto

import "github.com/yigit/gradplan/internal/catalog"

// MajorsResponse lists the available major names
type MajorsResponse struct {
	Majors []string `json:"majors" example:"Computer Science,Data Science"`
}

// CollegesResponse lists colleges with their majors
type CollegesResponse struct {
	Colleges []catalog.College `json:"colleges"`
}
