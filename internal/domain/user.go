package domain

// Role роль пользователя в системе
type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleBarber, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff returns true for roles that manage appointments and calendars
func (r Role) IsStaff() bool {
	return r == RoleBarber || r == RoleOwner || r == RoleAdmin
}

// Actor аутентифицированный пользователь, выполняющий запрос.
// Заполняется auth middleware из JWT клеймов.
type Actor struct {
	UserID int64
	Role   Role
}

// CanViewAppointment проверяет право актора видеть запись:
// персонал видит все записи, клиент - только свои
func (a Actor) CanViewAppointment(appt *Appointment) bool {
	if a.Role.IsStaff() {
		return true
	}
	return appt.UserID == a.UserID
}

// CanCancelAppointment проверяет право актора отменить запись
func (a Actor) CanCancelAppointment(appt *Appointment) bool {
	if a.Role == RoleOwner || a.Role == RoleAdmin {
		return true
	}
	if a.Role == RoleBarber {
		return appt.BarberID == a.UserID
	}
	return appt.UserID == a.UserID
}
