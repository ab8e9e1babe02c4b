package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"rectificadora/internal/config"
	"rectificadora/internal/database"
	"rectificadora/internal/domain"
	"rectificadora/internal/modules/auth"
	"rectificadora/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM orden_fotos")
	db.Exec("DELETE FROM facturas")
	db.Exec("DELETE FROM ordenes")
	db.Exec("DELETE FROM clientes")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	clientes := repository.NewClienteRepository(db)
	ordenes := repository.NewOrdenRepository(db)
	facturas := repository.NewFacturaRepository(db)

	log.Println("Creating users...")
	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		log.Fatal(err)
	}
	if err := users.Create(ctx, &domain.User{
		Email:        "admin@taller.com",
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
		Nombre:       "Administrador",
	}); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@taller.com / admin123")

	tecnicoHash, err := auth.HashPassword("tecnico123")
	if err != nil {
		log.Fatal(err)
	}
	if err := users.Create(ctx, &domain.User{
		Email:        "tecnico@taller.com",
		PasswordHash: tecnicoHash,
		Role:         domain.RoleTecnico,
		Nombre:       "Técnico de planta",
	}); err != nil {
		log.Fatal(err)
	}
	log.Println("Técnico created: tecnico@taller.com / tecnico123")

	log.Println("Creating clientes...")
	directorio := []domain.Cliente{
		{Nombre: "Transportes Vélez", Empresa: "Transportes Vélez S.A.", Telefono: "0991234567", Email: "operaciones@tvelez.ec", Ciudad: "Quevedo"},
		{Nombre: "Juan Suárez", Telefono: "0987654321", Email: "juan.suarez@gmail.com", Ciudad: "Quevedo"},
		{Nombre: "Agrícola San Carlos", Empresa: "San Carlos", Telefono: "0976543210", Email: "taller@sancarlos.ec", Ciudad: "Valencia"},
	}
	for i := range directorio {
		if err := clientes.Create(ctx, &directorio[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating ordenes...")
	now := time.Now()
	precio := 850.0
	muestras := []domain.Orden{
		{
			ID:            uuid.NewString(),
			Cliente:       "Transportes Vélez",
			MecanicoDueno: "Carlos Mendoza",
			Motor:         "Cummins 6BT 5.9",
			SerieMotor:    "CM-44871",
			TipoMotor:     "diesel",
			Prioridad:     "urgente",
			Estado:        "pendiente",
			FechaEstimada: ptrTime(now.AddDate(0, 0, 5)),
			Precio:        &precio,
			Observaciones: "Block con fisura visible en cilindro 3",
			DatosVino:     map[string]bool{"block": true, "cabezote": true, "cigueñal": false},
			CreatedAt:     now.AddDate(0, 0, -2),
			UpdatedAt:     now.AddDate(0, 0, -2),
		},
		{
			ID:            uuid.NewString(),
			Cliente:       "Juan Suárez",
			MecanicoDueno: "Juan Suárez",
			Motor:         "Toyota 2C",
			Prioridad:     "media",
			Estado:        "en-proceso",
			FechaEstimada: ptrTime(now.AddDate(0, 0, 10)),
			DatosVino:     map[string]bool{"cabezote": true},
			CreatedAt:     now.AddDate(0, 0, -7),
			UpdatedAt:     now.AddDate(0, 0, -1),
		},
		{
			ID:            uuid.NewString(),
			Cliente:       "Agrícola San Carlos",
			MecanicoDueno: "Pedro Zambrano",
			Motor:         "Perkins 4.236",
			Prioridad:     "baja",
			Estado:        "finalizado",
			CreatedAt:     now.AddDate(0, -1, 0),
			UpdatedAt:     now.AddDate(0, 0, -3),
		},
	}
	for i := range muestras {
		if err := ordenes.Create(ctx, &muestras[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating facturas...")
	subtotal := 760.0
	iva := 91.2
	if err := facturas.Create(ctx, &domain.Factura{
		OrdenID:       &muestras[2].ID,
		ClienteID:     &directorio[2].ID,
		ClienteNombre: "Agrícola San Carlos",
		Email:         "taller@sancarlos.ec",
		Subtotal:      &subtotal,
		IVA:           &iva,
		Total:         851.2,
		Estado:        domain.FacturaEmitida,
		Fecha:         now,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed.")
}

func ptrTime(t time.Time) *time.Time { return &t }
