package backup

// Documento de backup: árvore completa de veículos com itens, logs,
// serviços avulsos e metadados de anexos. Os arquivos em si não entram
// no backup; os caminhos ficariam inválidos em outra instalação.

const Version = "1.0"

const (
	ModeMerge   = "merge"
	ModeReplace = "replace"
)

type Document struct {
	ExportDate string          `json:"export_date"`
	Version    string          `json:"version"`
	Vehicles   []VehicleExport `json:"vehicles"`
}

type VehicleExport struct {
	Year             int                `json:"year"`
	Make             string             `json:"make"`
	Model            string             `json:"model"`
	EngineType       *string            `json:"engine_type"`
	CurrentMileage   int                `json:"current_mileage"`
	MaintenanceItems []ItemExport       `json:"maintenance_items"`
	GeneralRecords   []RecordExport     `json:"general_maintenance"`
}

type ItemExport struct {
	Name            string      `json:"name"`
	MaintenanceType string      `json:"maintenance_type"`
	FrequencyValue  int         `json:"frequency_value"`
	FrequencyUnit   string      `json:"frequency_unit"`
	Notes           string      `json:"notes"`
	Logs            []LogExport `json:"logs"`
}

type LogExport struct {
	DatePerformed string             `json:"date_performed"`
	Mileage       *int               `json:"mileage"`
	Cost          *float64           `json:"cost"`
	Notes         string             `json:"notes"`
	ReceiptPhoto  *string            `json:"receipt_photo"`
	Attachments   []AttachmentExport `json:"attachments"`
}

type RecordExport struct {
	Description   string             `json:"description"`
	DatePerformed string             `json:"date_performed"`
	Mileage       *int               `json:"mileage"`
	Cost          *float64           `json:"cost"`
	Notes         string             `json:"notes"`
	Attachments   []AttachmentExport `json:"attachments"`
}

type AttachmentExport struct {
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type ImportResult struct {
	Vehicles         int `json:"vehicles"`
	MaintenanceItems int `json:"maintenance_items"`
	MaintenanceLogs  int `json:"maintenance_logs"`
	GeneralRecords   int `json:"general_maintenance"`
}
