package models

type Paciente struct {
	PacienteID       int    `json:"pacienteId"`
	PacienteNombre   string `json:"pacienteNombre"`
	PacienteEscuela  string `json:"pacienteEscuela"`
	PacienteEdad     int    `json:"pacienteEdad"`
	PacienteTelefono string `json:"pacienteTelefono"`
	PacienteEmail    string `json:"pacienteEmail"`
	CreatedAt        string `json:"created_at,omitempty"`
}

type PacienteFormData struct {
	PacienteNombre   string `json:"pacienteNombre"`
	PacienteEscuela  string `json:"pacienteEscuela"`
	PacienteEdad     int    `json:"pacienteEdad"`
	PacienteTelefono string `json:"pacienteTelefono"`
	PacienteEmail    string `json:"pacienteEmail"`
}

type PacienteResponse struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message"`
	Paciente       *Paciente  `json:"paciente,omitempty"`
	Pacientes      []Paciente `json:"pacientes,omitempty"`
	Total          int        `json:"total,omitempty"`
	TotalPacientes int        `json:"totalPacientes,omitempty"`
}
