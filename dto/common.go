package dto

// ChangeStatusRequest là DTO chung cho các yêu cầu đổi trạng thái
type ChangeStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// IDsRequest là DTO cho các thao tác theo danh sách ID
type IDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
