package member

type CreateRequest struct {
	TeamID *string `json:"team_id" form:"team_id"`
	Name   *string `json:"name" form:"name"`
	Phone  *string `json:"phone" form:"phone"`
	Gender *string `json:"gender" form:"gender"`
}

type CreateResponse struct {
	ID     int     `json:"id"`
	TeamID *string `json:"team_id"`
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Gender *string `json:"gender"`
}
