package hmsdomain

// Room é um quarto do hotel com o tipo aninhado, conforme o contrato do backend
type Room struct {
	ID     int      `json:"id"`
	Name   string   `json:"tenPhong"`
	Floor  int      `json:"tang,omitempty"`
	Status string   `json:"trangThai"`
	Type   RoomType `json:"loaiPhong"`
}

// RoomType é um tipo de quarto com a diária associada
type RoomType struct {
	ID    int    `json:"id"`
	Name  string `json:"tenLoaiPhong"`
	Price int64  `json:"giaPhong"`
}

// RoomStatus é um item da lista de referência de status de quarto
type RoomStatus struct {
	Code string `json:"ma"`
	Name string `json:"ten"`
}
