package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// usageError marks command-line misuse (missing or unknown subcommands,
// bad flags) so main can exit with the usage status instead of the
// generic failure status.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func commands() map[string]command {
	cmds := []command{
		{
			name:        "login",
			usage:       "login -correo <email> -password <password>",
			description: "Authenticate and persist the session",
			run:         runLogin,
		},
		{
			name:        "logout",
			usage:       "logout",
			description: "Clear the persisted session",
			run:         runLogout,
		},
		{
			name:        "whoami",
			usage:       "whoami",
			description: "Show the active session",
			run:         runWhoami,
		},
		{
			name:        "register",
			usage:       "register -nombre <name> -correo <email> -password <password>",
			description: "Create an adopter account",
			run:         runRegister,
		},
		{
			name:        "profile",
			usage:       "profile",
			description: "Fetch the authenticated profile from the backend",
			run:         runProfile,
		},
		{
			name:        "pets",
			usage:       "pets list|get|add|rm [flags]",
			description: "Browse and manage the pet inventory",
			run:         runPets,
		},
		{
			name:        "adoptions",
			usage:       "adoptions my|list|request|complete [flags]",
			description: "Submit and manage adoption requests",
			run:         runAdoptions,
		},
		{
			name:        "users",
			usage:       "users list",
			description: "List managed accounts (privileged)",
			run:         runUsers,
		},
		{
			name:        "categories",
			usage:       "categories list|add|rm [flags]",
			description: "Manage pet categories",
			run:         runCategories,
		},
		{
			name:        "roles",
			usage:       "roles list",
			description: "List backend roles (privileged)",
			run:         runRoles,
		},
	}

	out := make(map[string]command, len(cmds))
	for _, c := range cmds {
		out[c.name] = c
	}
	return out
}

func runLogin(app *appContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	correo := fs.String("correo", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	sess, err := app.session.Login(app.ctx, domain.Credentials{
		Correo:   *correo,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", sess.User.Correo, sess.User.Role)
	fmt.Printf("home: %s\n", app.session.HomeRoute())
	return nil
}

func runLogout(app *appContext, _ []string) error {
	if err := app.session.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func runWhoami(app *appContext, _ []string) error {
	sess, ok := app.session.Current()
	if !ok {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("nombre:\t%s\n", sess.User.Nombre)
	fmt.Printf("correo:\t%s\n", sess.User.Correo)
	fmt.Printf("role:\t%s\n", sess.User.Role)
	fmt.Printf("home:\t%s\n", app.session.HomeRoute())
	return nil
}

func runRegister(app *appContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	nombre := fs.String("nombre", "", "full name")
	correo := fs.String("correo", "", "account email")
	password := fs.String("password", "", "account password")
	telefono := fs.String("telefono", "", "phone number (optional)")
	direccion := fs.String("direccion", "", "address (optional)")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	sess, err := app.session.RegisterAdopter(app.ctx, domain.RegisterRequest{
		Nombre:    *nombre,
		Correo:    *correo,
		Password:  *password,
		Telefono:  *telefono,
		Direccion: *direccion,
	})
	if err != nil {
		return err
	}

	if sess == nil {
		fmt.Println("account created, run `adoptctl login`")
		return nil
	}
	fmt.Printf("account created, logged in as %s (%s)\n", sess.User.Correo, sess.User.Role)
	return nil
}

func runProfile(app *appContext, _ []string) error {
	user, err := app.session.Profile(app.ctx)
	if err != nil {
		return err
	}
	fmt.Printf("nombre:\t%s\n", user.Nombre)
	fmt.Printf("correo:\t%s\n", user.Correo)
	if user.Rol != nil {
		fmt.Printf("rol:\t%s\n", user.Rol.Nombre)
	}
	return nil
}

func runPets(app *appContext, args []string) error {
	if len(args) == 0 {
		return usageErrorf("usage: pets list|get|add|rm [flags]")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("pets list", flag.ContinueOnError)
		estado := fs.String("estado", "", "filter by state (DISPONIBLE, EN_PROCESO_ADOPCION, ADOPTADO)")
		categoria := fs.Int("categoria", 0, "filter by category id")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		pets, err := app.api.Pets().List(app.ctx, domain.PetFilter{
			Estado:      domain.PetStatus(*estado),
			CategoriaID: *categoria,
		})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tRAZA\tCATEGORIA\tESTADO")
		for _, p := range pets {
			cat := ""
			if p.Categoria != nil {
				cat = p.Categoria.Nombre
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Nombre, p.Raza, cat, p.Estado)
		}
		return w.Flush()

	case "get":
		fs := flag.NewFlagSet("pets get", flag.ContinueOnError)
		id := fs.Int("id", 0, "pet id")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		pet, err := app.api.Pets().Get(app.ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("nombre:\t%s\n", pet.Nombre)
		fmt.Printf("raza:\t%s\n", pet.Raza)
		fmt.Printf("estado:\t%s\n", pet.Estado)
		if pet.Descripcion != "" {
			fmt.Printf("descripcion:\t%s\n", pet.Descripcion)
		}
		return nil

	case "add", "create":
		fs := flag.NewFlagSet("pets add", flag.ContinueOnError)
		nombre := fs.String("nombre", "", "pet name")
		raza := fs.String("raza", "", "breed")
		categoria := fs.Int("categoria", 0, "category id")
		color := fs.String("color", "", "color")
		peso := fs.Float64("peso", 0, "weight in kg")
		estatura := fs.Float64("estatura", 0, "height in cm")
		descripcion := fs.String("descripcion", "", "description")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		pet, err := app.api.Pets().Create(app.ctx, domain.PetInput{
			Nombre:      *nombre,
			Raza:        *raza,
			CategoriaID: *categoria,
			Color:       *color,
			Peso:        *peso,
			Estatura:    *estatura,
			Descripcion: *descripcion,
		})
		if err != nil {
			return err
		}
		fmt.Printf("pet %d created\n", pet.ID)
		return nil

	case "rm", "delete":
		fs := flag.NewFlagSet("pets rm", flag.ContinueOnError)
		id := fs.Int("id", 0, "pet id")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		if err := app.api.Pets().Delete(app.ctx, *id); err != nil {
			return err
		}
		fmt.Println("pet removed")
		return nil
	}
	return usageErrorf("unknown pets subcommand %q", args[0])
}

func runAdoptions(app *appContext, args []string) error {
	if len(args) == 0 {
		return usageErrorf("usage: adoptions my|list|request|complete [flags]")
	}

	switch args[0] {
	case "my":
		adoptions, err := app.api.Adoptions().My(app.ctx)
		if err != nil {
			return err
		}
		return printAdoptions(adoptions)

	case "list":
		adoptions, err := app.api.Adoptions().List(app.ctx)
		if err != nil {
			return err
		}
		return printAdoptions(adoptions)

	case "request":
		fs := flag.NewFlagSet("adoptions request", flag.ContinueOnError)
		petID := fs.Int("pet", 0, "pet id")
		motivo := fs.String("motivo", "", "reason for adopting")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		adoption, err := app.api.Adoptions().Create(app.ctx, domain.AdoptionRequest{
			PetID:          *petID,
			MotivoAdopcion: *motivo,
		})
		if err != nil {
			return err
		}
		fmt.Printf("adoption request %d submitted (%s)\n", adoption.ID, adoption.Estado)
		return nil

	case "complete":
		fs := flag.NewFlagSet("adoptions complete", flag.ContinueOnError)
		id := fs.Int("id", 0, "adoption id")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		adoption, err := app.api.Adoptions().Complete(app.ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("adoption %d marked %s\n", adoption.ID, adoption.Estado)
		return nil
	}
	return usageErrorf("unknown adoptions subcommand %q", args[0])
}

func printAdoptions(adoptions []domain.Adoption) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPET\tESTADO\tSOLICITUD")
	for _, a := range adoptions {
		fecha := ""
		if !a.FechaSolicitud.IsZero() {
			fecha = a.FechaSolicitud.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Pet.Nombre, a.Estado, fecha)
	}
	return w.Flush()
}

func runUsers(app *appContext, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return usageErrorf("usage: users list")
	}
	users, err := app.api.Users().List(app.ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCORREO\tROL")
	for _, u := range users {
		rol := ""
		if u.Rol != nil {
			rol = u.Rol.Nombre
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Nombre, u.Correo, rol)
	}
	return w.Flush()
}

func runCategories(app *appContext, args []string) error {
	if len(args) == 0 {
		return usageErrorf("usage: categories list|add|rm [flags]")
	}

	switch args[0] {
	case "list":
		categories, err := app.api.Categories().List(app.ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Nombre)
		}
		return w.Flush()

	case "add", "create":
		fs := flag.NewFlagSet("categories add", flag.ContinueOnError)
		nombre := fs.String("nombre", "", "category name")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		category, err := app.api.Categories().Create(app.ctx, *nombre)
		if err != nil {
			return err
		}
		fmt.Printf("category %d created\n", category.ID)
		return nil

	case "rm", "delete":
		fs := flag.NewFlagSet("categories rm", flag.ContinueOnError)
		id := fs.Int("id", 0, "category id")
		if err := fs.Parse(args[1:]); err != nil {
			return usageErrorf("%v", err)
		}
		if err := app.api.Categories().Delete(app.ctx, *id); err != nil {
			return err
		}
		fmt.Println("category removed")
		return nil
	}
	return usageErrorf("unknown categories subcommand %q", args[0])
}

func runRoles(app *appContext, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return usageErrorf("usage: roles list")
	}
	roles, err := app.api.Roles().List(app.ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, r := range roles {
		fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Nombre)
	}
	return w.Flush()
}
