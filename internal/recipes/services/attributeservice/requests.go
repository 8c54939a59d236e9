package attributeservice

type CreateAttributeRequest struct {
	Name string `json:"name" validate:"notblank,max=255"`
}
