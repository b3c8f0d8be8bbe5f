package entity

type Customer struct {
	Id    string
	Name  string
	Email string
	Phone string
}

type Vehicle struct {
	Id                 string
	CustomerId         string
	Model              string
	RegistrationNumber string
	Year               int
	Color              string
	AgeMonths          int
}
