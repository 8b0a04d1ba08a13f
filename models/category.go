package models

// Category groups contacts. Names are unique across all categories.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryInput is used for creating/updating categories.
type CategoryInput struct {
	Name string `json:"name" example:"Friends"`
}

// CategoryPatch holds the fields to merge into an existing category.
// Nil fields are left untouched.
type CategoryPatch struct {
	Name *string
}

// Apply merges p into c.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	return c
}

// Validate returns every rule the input violates, in field order.
func (c *CategoryInput) Validate() []string {
	var errs []string
	if validate.Var(c.Name, "required,max=100") != nil {
		errs = append(errs, MsgNameInvalid)
	}
	return errs
}

// Patch converts a validated input into a patch.
func (c *CategoryInput) Patch() CategoryPatch {
	name := c.Name
	return CategoryPatch{Name: &name}
}
