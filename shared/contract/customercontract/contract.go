package customercontract

// CustomerInfo คือข้อมูลลูกค้าที่โมดูลอื่นใช้ได้ และเป็นรูปแบบ JSON ที่ตอบกลับทาง API
type CustomerInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"customerName"`
	Email         string `json:"customerEmail"`
	ContactNumber string `json:"customerContactNumber"`
}

func NewCustomerInfo(id int64, name, email, contactNumber string) *CustomerInfo {
	return &CustomerInfo{ID: id, Name: name, Email: email, ContactNumber: contactNumber}
}

// หาไม่เจอจะได้ error ชนิด RESOURCE_NOT_FOUND
type GetCustomerByIDQuery struct {
	ID int64
}

type GetCustomerByIDQueryResult struct {
	CustomerInfo
}

type GetCustomerByEmailQuery struct {
	Email string
}

type GetCustomerByEmailQueryResult struct {
	CustomerInfo
}
