package domain

// Doctor - справочные данные врача, неизменяемые в рамках движка календаря
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Patient - справочные данные пациента
type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
