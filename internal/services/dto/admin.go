package dto

import "tutalink_backend/internal/models"

// DashboardData is the admin overview, recomputed per request by a full
// scan of the store.
type DashboardData struct {
	TotalUsers          int        `json:"totalUsers"`
	TotalTutors         int        `json:"totalTutors"`
	TotalSessions       int        `json:"totalSessions"`
	TotalRevenue        float64    `json:"totalRevenue"`
	PendingApplications int        `json:"pendingApplications"`
	UserReports         int        `json:"userReports"`
	RecentActivities    []Activity `json:"recentActivities"`
}

// Activity is a demo feed entry; real activity tracking does not exist
// yet.
type Activity struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	User      string `json:"user,omitempty"`
	Learner   string `json:"learner,omitempty"`
	Tutor     string `json:"tutor,omitempty"`
	Timestamp string `json:"timestamp"`
}

type UpdateFooterRequest struct {
	Copyright   string                   `json:"copyright" binding:"required"`
	Links       []models.FooterLink      `json:"links"`
	SocialMedia []models.SocialMediaLink `json:"socialMedia"`
}

type UpdateConfigRequest struct {
	Value string `json:"value" binding:"required"`
}
