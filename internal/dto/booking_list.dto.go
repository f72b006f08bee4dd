package dto

type BookingListDTO struct {
	ID            uint    `json:"id"`
	Reference     string  `json:"reference"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	BarberName    string  `json:"barber_name"`
	ServiceName   string  `json:"service_name"`
	Price         float64 `json:"price"`
}
