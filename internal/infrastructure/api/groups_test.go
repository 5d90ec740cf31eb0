package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

func TestPetsList_FilterQuery(t *testing.T) {
	var query string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Pet{ //nolint:errcheck
			{ID: 1, Nombre: "Luna", Estado: domain.PetAvailable},
		})
	}))

	pets, err := c.Pets().List(context.Background(), domain.PetFilter{
		Estado:      domain.PetAvailable,
		CategoriaID: 2,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(pets) != 1 || pets[0].Nombre != "Luna" {
		t.Fatalf("pets = %+v", pets)
	}
	if query != "categoriaId=2&estado=DISPONIBLE" {
		t.Fatalf("query = %q", query)
	}
}

func TestPetsList_NoFilterNoQuery(t *testing.T) {
	var rawQuery string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))

	if _, err := c.Pets().List(context.Background(), domain.PetFilter{}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rawQuery != "" {
		t.Fatalf("query = %q, want empty", rawQuery)
	}
}

func TestAdoptionsCreate(t *testing.T) {
	var method, path string
	var received domain.AdoptionRequest
	c, st, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&received) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Adoption{ //nolint:errcheck
			ID:     5,
			Estado: domain.AdoptionPending,
		})
	}))
	loginStore(t, st, "tok")

	adoption, err := c.Adoptions().Create(context.Background(), domain.AdoptionRequest{
		PetID:          3,
		MotivoAdopcion: "siempre quise un perro",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if method != http.MethodPost || path != "/adoptions" {
		t.Fatalf("request = %s %s", method, path)
	}
	if received.PetID != 3 || received.MotivoAdopcion == "" {
		t.Fatalf("received = %+v", received)
	}
	if adoption.Estado != domain.AdoptionPending {
		t.Fatalf("estado = %s", adoption.Estado)
	}
}

func TestAdoptionsComplete_Path(t *testing.T) {
	var method, path string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Adoption{ID: 9, Estado: domain.AdoptionCompleted}) //nolint:errcheck
	}))

	adoption, err := c.Adoptions().Complete(context.Background(), 9)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if method != http.MethodPut || path != "/adoptions/9/complete" {
		t.Fatalf("request = %s %s", method, path)
	}
	if adoption.Estado != domain.AdoptionCompleted {
		t.Fatalf("estado = %s", adoption.Estado)
	}
}

func TestAdoptionsMy_Path(t *testing.T) {
	var path string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))

	if _, err := c.Adoptions().My(context.Background()); err != nil {
		t.Fatalf("My error: %v", err)
	}
	if path != "/adoptions/my-adoptions" {
		t.Fatalf("path = %q", path)
	}
}

func TestAdoptersGetByEmail_Escaped(t *testing.T) {
	var path string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"correo":"ana+pets@example.com"}`)) //nolint:errcheck
	}))

	adopter, err := c.Adopters().GetByEmail(context.Background(), "ana+pets@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if path != "/adopters/by-email/ana+pets@example.com" {
		t.Fatalf("path = %q", path)
	}
	if adopter.ID != 1 {
		t.Fatalf("adopter = %+v", adopter)
	}
}

func TestUsersRolObjectForm(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"nombre":"Ana","correo":"ana@example.com","rol":{"id":3,"nombre":"SUPERADMIN"}}]`)) //nolint:errcheck
	}))

	users, err := c.Users().List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("users = %+v", users)
	}
	if users[0].Rol == nil || users[0].Rol.Nombre != "SUPERADMIN" {
		t.Fatalf("rol = %+v", users[0].Rol)
	}
}

func TestCategoriesCreate_Body(t *testing.T) {
	var body map[string]string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":4,"nombre":"Aves"}`)) //nolint:errcheck
	}))

	category, err := c.Categories().Create(context.Background(), "Aves")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if body["nombre"] != "Aves" {
		t.Fatalf("body = %v", body)
	}
	if category.ID != 4 {
		t.Fatalf("category = %+v", category)
	}
}

func TestPetsUpdate_PathAndBody(t *testing.T) {
	var method, path string
	var received domain.PetInput
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&received) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Pet{ID: 8, Nombre: "Rocky", Estado: domain.PetInAdoption}) //nolint:errcheck
	}))

	pet, err := c.Pets().Update(context.Background(), 8, domain.PetInput{
		Nombre:      "Rocky",
		Raza:        "mestizo",
		CategoriaID: 1,
		NuevoEstado: domain.PetInAdoption,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if method != http.MethodPut || path != "/pets/8" {
		t.Fatalf("request = %s %s", method, path)
	}
	if received.NuevoEstado != domain.PetInAdoption || received.CategoriaID != 1 {
		t.Fatalf("received = %+v", received)
	}
	if pet.Estado != domain.PetInAdoption {
		t.Fatalf("estado = %s", pet.Estado)
	}
}

func TestUsersCreate_Body(t *testing.T) {
	var method, path string
	var received domain.UserInput
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&received) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"nombre":"Luis","correo":"luis@example.com","rol":{"id":2,"nombre":"EMPLEADO"}}`)) //nolint:errcheck
	}))

	user, err := c.Users().Create(context.Background(), domain.UserInput{
		Nombre:   "Luis",
		Correo:   "luis@example.com",
		Password: "secret1",
		RolID:    2,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if method != http.MethodPost || path != "/users" {
		t.Fatalf("request = %s %s", method, path)
	}
	if received.RolID != 2 || received.Correo != "luis@example.com" {
		t.Fatalf("received = %+v", received)
	}
	if user.Rol == nil || user.Rol.Nombre != "EMPLEADO" {
		t.Fatalf("rol = %+v", user.Rol)
	}
}

func TestUsersUpdateAndDelete_Paths(t *testing.T) {
	var method, path string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"nombre":"Luis"}`)) //nolint:errcheck
	}))

	if _, err := c.Users().Update(context.Background(), 2, domain.UserInput{
		Nombre: "Luis",
		Correo: "luis@example.com",
	}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if method != http.MethodPut || path != "/users/2" {
		t.Fatalf("request = %s %s", method, path)
	}

	if err := c.Users().Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if method != http.MethodDelete || path != "/users/2" {
		t.Fatalf("request = %s %s", method, path)
	}
}

func TestRolesCRUD_Paths(t *testing.T) {
	var method, path string
	var body map[string]string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body = nil
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"nombre":"ADMIN"}`)) //nolint:errcheck
	}))
	ctx := context.Background()

	role, err := c.Roles().Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if method != http.MethodGet || path != "/roles/3" {
		t.Fatalf("request = %s %s", method, path)
	}
	if role.Nombre != "ADMIN" {
		t.Fatalf("role = %+v", role)
	}

	if _, err := c.Roles().Create(ctx, "ADMIN"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if method != http.MethodPost || path != "/roles" || body["nombre"] != "ADMIN" {
		t.Fatalf("request = %s %s body %v", method, path, body)
	}

	if _, err := c.Roles().Update(ctx, 3, "GERENTE"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if method != http.MethodPut || path != "/roles/3" || body["nombre"] != "GERENTE" {
		t.Fatalf("request = %s %s body %v", method, path, body)
	}

	if err := c.Roles().Delete(ctx, 3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if method != http.MethodDelete || path != "/roles/3" {
		t.Fatalf("request = %s %s", method, path)
	}
}

func TestAuthLogin_ReturnsRawBody(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc","rol":"3","nombre":"Ana"}`)) //nolint:errcheck
	}))

	body, err := c.Auth().Login(context.Background(), domain.Credentials{
		Correo:   "ana@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["token"] != "abc" || payload["rol"] != "3" {
		t.Fatalf("payload = %v", payload)
	}
}
