package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
