package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	session, err := a.api.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.session = session
	log.Printf("Login successful (%s)", session.Role)
}

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fname, err := GetSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	lname, err := GetSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.Register(ctx, email, password, fname, lname); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Println("Registration successful, you can log in now")
}

func (a *App) Logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		log.Printf("Logout unsuccessful: %s", err.Error())
	} else {
		log.Println("Logged out")
	}
	a.session = nil
}
