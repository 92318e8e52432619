package web

import "github.com/ecodeclub/mblog/internal/settings/internal/domain"

type ContentSettings struct {
	EnableComments       bool `json:"enableComments"`
	RequireCommentReview bool `json:"requireCommentReview"`
	EchoPendingComment   bool `json:"echoPendingComment"`
}

type NotificationSettings struct {
	SendEmailOnNewComment bool   `json:"sendEmailOnNewComment"`
	AdminEmail            string `json:"adminEmail"`
}

func (c ContentSettings) toDomain() domain.ContentSettings {
	return domain.ContentSettings{
		EnableComments:       c.EnableComments,
		RequireCommentReview: c.RequireCommentReview,
		EchoPendingComment:   c.EchoPendingComment,
	}
}

func newContentSettings(cs domain.ContentSettings) ContentSettings {
	return ContentSettings{
		EnableComments:       cs.EnableComments,
		RequireCommentReview: cs.RequireCommentReview,
		EchoPendingComment:   cs.EchoPendingComment,
	}
}

func (n NotificationSettings) toDomain() domain.NotificationSettings {
	return domain.NotificationSettings{
		SendEmailOnNewComment: n.SendEmailOnNewComment,
		AdminEmail:            n.AdminEmail,
	}
}

func newNotificationSettings(ns domain.NotificationSettings) NotificationSettings {
	return NotificationSettings{
		SendEmailOnNewComment: ns.SendEmailOnNewComment,
		AdminEmail:            ns.AdminEmail,
	}
}
