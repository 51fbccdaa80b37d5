package models

type Course struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DepartmentID int    `json:"departmentId"`
}

type Department struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CollegeID int    `json:"collegeId"`
}

type College struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
