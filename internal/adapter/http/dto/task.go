package dto

type TaskItem struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Project        string           `json:"project"`
	AssignedTo     []UserSummary    `json:"assignedTo"`
	CreatedBy      UserSummary      `json:"createdBy"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	DueDate        *string          `json:"dueDate,omitempty"`
	CompletedAt    *string          `json:"completedAt,omitempty"`
	Attachments    []AttachmentItem `json:"attachments"`
	Comments       []CommentItem    `json:"comments"`
	Labels         []string         `json:"labels"`
	EstimatedHours *float64         `json:"estimatedHours,omitempty"`
	ActualHours    *float64         `json:"actualHours,omitempty"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

type AttachmentItem struct {
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

type CommentItem struct {
	User      UserSummary `json:"user"`
	Text      string      `json:"text"`
	CreatedAt string      `json:"createdAt"`
}

type TaskStatsResponse struct {
	Todo       int64   `json:"todo"`
	InProgress int64   `json:"in_progress"`
	Review     int64   `json:"review"`
	Done       int64   `json:"done"`
	Total      int64   `json:"total"`
	TotalHours float64 `json:"totalHours"`
}

type CreateTaskRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=65535"`
	AssignedTo     []string `json:"assignedTo" binding:"omitempty,dive,required"`
	Status         *string  `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate        *string  `json:"dueDate"`
	Labels         []string `json:"labels" binding:"omitempty,dive,max=64"`
	EstimatedHours *float64 `json:"estimatedHours" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	Title          *string             `json:"title" binding:"omitempty,max=255"`
	Description    *string             `json:"description" binding:"omitempty,max=65535"`
	AssignedTo     []string            `json:"assignedTo" binding:"omitempty,dive,required"`
	Status         *string             `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority       *string             `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate        *string             `json:"dueDate"`
	CompletedAt    *string             `json:"completedAt"`
	Labels         []string            `json:"labels" binding:"omitempty,dive,max=64"`
	EstimatedHours *float64            `json:"estimatedHours" binding:"omitempty,gte=0"`
	ActualHours    *float64            `json:"actualHours" binding:"omitempty,gte=0"`
	Attachments    []AttachmentRequest `json:"attachments" binding:"omitempty,dive"`
}

type AttachmentRequest struct {
	Filename   string  `json:"filename" binding:"required,max=255"`
	Path       string  `json:"path" binding:"required"`
	Size       int64   `json:"size" binding:"gte=0"`
	UploadedAt *string `json:"uploadedAt"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}
