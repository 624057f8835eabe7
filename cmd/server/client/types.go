package client

// Wire shapes of the server's JSON responses

type trainer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Birthdate string     `json:"birthdate"`
	Age       int        `json:"age"`
	Inventory []*item    `json:"inventory"`
	Pokemons  []*pokemon `json:"pokemons"`
}

type item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TrainerID   int64  `json:"trainer_id"`
}

type pokemon struct {
	ID         int64  `json:"id"`
	APIID      int    `json:"api_id"`
	Name       string `json:"name"`
	CustomName string `json:"custom_name"`
	TrainerID  int64  `json:"trainer_id"`
}
