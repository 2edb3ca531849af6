package domain

type UserRole string

const (
	RoleClient    UserRole = "CLIENT"
	RoleExecutive UserRole = "EXECUTIVE"
)

type User struct {
	ID          int64    `json:"id,omitempty"`
	Rut         string   `json:"rut,omitempty"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Email       string   `json:"email,omitempty"`
	Password    string   `json:"password,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Age         int      `json:"age,omitempty"`
	Role        UserRole `json:"role,omitempty"`
}

// FullName joins first and last name the way the review screens show a client.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u User) IsExecutive() bool {
	return u.Role == RoleExecutive
}

// Public returns a copy without the password.
func (u User) Public() User {
	u.Password = ""
	return u
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Rut             string `json:"rut"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Age             int    `json:"age"`
}

// User converts the registration form into the payload the backend stores.
func (r Registration) User() User {
	return User{
		Rut:         r.Rut,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Age:         r.Age,
		Role:        RoleClient,
	}
}

type LoginResult struct {
	User            User `json:"user"`
	IsAuthenticated bool `json:"isAuthenticated"`
}
