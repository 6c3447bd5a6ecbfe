package document

type GenerateRequest struct {
	Record     map[string]string `json:"record" validate:"required"`
	ClientName string            `json:"client_name" validate:"required"`
	EmailTo    string            `json:"email_to" validate:"omitempty,email"`
}

type GenerateResponse struct {
	Document string `json:"document"`
	FilePath string `json:"file_path,omitempty"`
	Defects  []string `json:"defects,omitempty"`
}
