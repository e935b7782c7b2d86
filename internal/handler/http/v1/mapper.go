package v1

import (
	"github.com/surveilmap/camera_triage_system/internal/models"
)

// ModelToCameraResponse преобразует доменную модель камеры в DTO для ответа
func ModelToCameraResponse(model models.Camera) *CameraResponse {
	return &CameraResponse{
		ID:               model.ID,
		Location:         model.Location,
		PrivateGovt:      model.PrivateGovt,
		OwnerName:        model.OwnerName,
		ContactNo:        model.ContactNo,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		Coverage:         model.Coverage,
		Backup:           model.Backup,
		ConnectedNetwork: model.ConnectedNetwork,
		Status:           model.Status,
	}
}

// SnapshotToResponse преобразует снимок поиска в DTO
func SnapshotToResponse(snap models.SearchSnapshot) *SearchSnapshotResponse {
	cameras := make([]*CameraResponse, len(snap.Cameras))
	for i, camera := range snap.Cameras {
		cameras[i] = ModelToCameraResponse(camera)
	}

	return &SearchSnapshotResponse{
		Origin: OriginResponse{
			Latitude:   snap.Origin.Latitude,
			Longitude:  snap.Origin.Longitude,
			Provenance: string(snap.Origin.Provenance),
		},
		RadiusMeters:    snap.RadiusMeters,
		StatusFilter:    snap.StatusFilter,
		OwnershipFilter: snap.OwnershipFilter,
		Cameras:         cameras,
		Querying:        snap.Querying,
		QueryError:      snap.QueryError,
		LocationError:   snap.LocationError,
		Tracking:        snap.Tracking,
	}
}

// SelectionToResponse преобразует текущий выбор в DTO
func SelectionToResponse(sel models.Selection) SelectionResponse {
	return SelectionResponse{
		Kind:        string(sel.Kind),
		CameraIndex: sel.CameraIndex,
		TicketID:    sel.TicketID,
	}
}

// OverlayToResponse преобразует содержимое оверлея в DTO
func OverlayToResponse(overlay models.Overlay) *OverlayResponse {
	resp := &OverlayResponse{
		Selection: SelectionToResponse(overlay.Selection),
		Latitude:  overlay.Latitude,
		Longitude: overlay.Longitude,
	}
	if overlay.Camera != nil {
		resp.Camera = ModelToCameraResponse(*overlay.Camera)
	}
	return resp
}

// ModelToTicketResponse преобразует доменную модель тикета в DTO
func ModelToTicketResponse(model models.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:          model.ID,
		CameraID:    model.CameraID,
		Description: model.Description,
		Location:    model.Location,
		Status:      string(model.Status),
		ReportedBy:  model.ReportedBy,
		ReportedAt:  model.ReportedAt,
	}
}

// ModelsToTicketResponses преобразует слайс тикетов в слайс DTO
func ModelsToTicketResponses(tickets []models.Ticket) []*TicketResponse {
	responses := make([]*TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = ModelToTicketResponse(ticket)
	}
	return responses
}

// DialogToResponse преобразует открытый диалог в DTO
func DialogToResponse(dialog *models.TicketDialog) *TicketDialogResponse {
	if dialog == nil {
		return nil
	}
	return &TicketDialogResponse{
		TicketID: dialog.TicketID,
		Camera:   *ModelToCameraResponse(dialog.Camera),
	}
}

// NotificationToResponse преобразует уведомление в DTO
func NotificationToResponse(n *models.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		Title:       n.Title,
		Description: n.Description,
		EmittedAt:   n.EmittedAt,
	}
}
