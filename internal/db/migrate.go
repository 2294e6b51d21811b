package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/pkg/logger"
)

// Migration is a named schema change applied exactly once. Applied
// names are recorded in the migrations table, so the list below is
// append-only: never edit or reorder entries that shipped.
type Migration struct {
	Name string
	Run  func(tx *gorm.DB) error
}

var migrations = []Migration{
	{
		Name: "001_initial_schema",
		Run: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS users (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					email TEXT UNIQUE NOT NULL,
					password TEXT NOT NULL,
					name TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`).Error
		},
	},
	{
		Name: "002_add_name_column_to_users",
		Run: func(tx *gorm.DB) error {
			// Kept for databases created before 001 included the column.
			if columnExists(tx, "users", "name") {
				return nil
			}
			return tx.Exec("ALTER TABLE users ADD COLUMN name TEXT").Error
		},
	},
	{
		Name: "003_create_posts_table",
		Run: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS posts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					category TEXT DEFAULT 'review',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
				)`).Error
		},
	},
	{
		Name: "004_create_indexes",
		Run: func(tx *gorm.DB) error {
			stmts := []string{
				"CREATE INDEX IF NOT EXISTS idx_posts_user_id ON posts(user_id)",
				"CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at)",
				"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
			}
			for _, stmt := range stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Name: "005_create_orders_table",
		Run: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS orders (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					product_id INTEGER,
					product_title TEXT NOT NULL,
					price REAL NOT NULL,
					quantity INTEGER DEFAULT 1,
					status TEXT DEFAULT 'processing',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
					FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL
				)`).Error
		},
	},
	{
		Name: "006_create_favorites_table",
		Run: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS favorites (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					product_id INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(user_id, product_id),
					FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
				)`).Error
		},
	},
	{
		Name: "007_create_products_and_music",
		Run: func(tx *gorm.DB) error {
			if err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS products (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					description TEXT NOT NULL,
					price REAL NOT NULL,
					price_unit TEXT NOT NULL DEFAULT 'рублей',
					category TEXT DEFAULT 'other',
					video TEXT,
					poster TEXT,
					image TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`).Error; err != nil {
				return err
			}
			if err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS music (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					price REAL NOT NULL,
					price_unit TEXT NOT NULL DEFAULT 'рублей',
					image TEXT,
					audio TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`).Error; err != nil {
				return err
			}
			return seedCatalog(tx)
		},
	},
	{
		Name: "008_add_admin_and_reviews",
		Run: func(tx *gorm.DB) error {
			if !columnExists(tx, "users", "role") {
				if err := tx.Exec("ALTER TABLE users ADD COLUMN role TEXT DEFAULT 'user'").Error; err != nil {
					return err
				}
			}
			if !columnExists(tx, "products", "review_count") {
				if err := tx.Exec("ALTER TABLE products ADD COLUMN review_count INTEGER DEFAULT 0").Error; err != nil {
					return err
				}
			}
			if err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS reviews (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					product_id INTEGER NOT NULL,
					rating INTEGER NOT NULL CHECK(rating >= 1 AND rating <= 5),
					text TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					approved INTEGER DEFAULT 0,
					likes INTEGER DEFAULT 0,
					admin_response TEXT,
					FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
					FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
				)`).Error; err != nil {
				return err
			}
			stmts := []string{
				"CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id)",
				"CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id)",
				"CREATE INDEX IF NOT EXISTS idx_reviews_approved ON reviews(approved)",
			}
			for _, stmt := range stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Name: "009_add_product_id_to_posts",
		Run: func(tx *gorm.DB) error {
			if columnExists(tx, "posts", "product_id") {
				return nil
			}
			return tx.Exec("ALTER TABLE posts ADD COLUMN product_id INTEGER").Error
		},
	},
}

// Migrate applies every migration that is not yet recorded in the
// migrations table. Each migration runs inside its own transaction
// together with the ledger insert.
func Migrate(gdb *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := gdb.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		var count int64
		if err := gdb.Table("migrations").Where("name = ?", m.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.Name, err)
		}
		if count > 0 {
			continue
		}

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Exec("INSERT INTO migrations (name) VALUES (?)", m.Name).Error
		})
		if err != nil {
			logger.Error("Migration failed", err, map[string]interface{}{
				"migration": m.Name,
			})
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}

		logger.Info("Migration applied", map[string]interface{}{
			"migration": m.Name,
		})
		applied++
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"total":   len(migrations),
		"applied": applied,
	})
	return nil
}

func columnExists(tx *gorm.DB, table, column string) bool {
	var count int64
	tx.Raw(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&count)
	return count > 0
}

type seedProduct struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Video       *string
	Poster      string
	Image       string
}

func strPtr(s string) *string { return &s }

// seedCatalog inserts the storefront catalog. Products are keyed by
// title and music by table emptiness, so re-running is a no-op.
func seedCatalog(tx *gorm.DB) error {
	products := []seedProduct{
		{
			Title:       "Клавиатура mchose jet75",
			Description: "Высококачественные датчики Холла обеспечивают точное линейное считывание, сверхвысокую чувствительность и исключительную отзывчивость. Идеальна для геймеров и профессионалов.",
			Price:       9000,
			Category:    "клавиатура",
			Video:       strPtr("/assets/videos/mchosejet75-review.mp4"),
			Poster:      "/assets/imgs/mchosejet75.webp",
			Image:       "/assets/imgs/mchosejet75.webp",
		},
		{
			Title:       "Компьютерная мышь mchose k7 ultra",
			Description: "Сверхлёгкая беспроводная игровая мышь MCHOSE K7 Ultra - это идеальный выбор для тех, кто любит играть в компьютерные игры. Она обладает максимальным разрешением датчика 42000 DPI, что позволяет вам быстро перемещаться по экрану и точно контролировать курсор.",
			Price:       8500,
			Category:    "компьютерная мышь",
			Video:       strPtr("/assets/videos/mchosek7.mp4"),
			Poster:      "/assets/imgs/mchosek7ultra.webp",
			Image:       "/assets/imgs/mchosek7ultra.webp",
		},
		{
			Title:       "HyperX Cloud Mini 3.5 мм",
			Description: "Компактные игровые наушники с превосходным звуком и удобной посадкой. Идеальны для длительных игровых сессий благодаря мягким амбушюрам и легкому весу. Совместимы с ПК, консолями и мобильными устройствами.",
			Price:       3500,
			Category:    "наушники",
			Poster:      "/assets/imgs/hyperx.webp",
			Image:       "/assets/imgs/hyperx.webp",
		},
		{
			Title:       "Logitech G G435",
			Description: "Беспроводные игровые наушники с технологией Lightspeed и Bluetooth. Легкие и удобные, с отличным качеством звука и микрофоном. Подходят для игр, музыки и звонков.",
			Price:       4500,
			Category:    "наушники",
			Poster:      "/assets/imgs/logitechg435.webp",
			Image:       "/assets/imgs/logitechg435.webp",
		},
		{
			Title:       "Видеокабель HDMI - Type C",
			Description: "Высококачественный кабель для подключения устройств с USB-C к мониторам и телевизорам с HDMI. Поддерживает разрешение до 4K и передачу звука. Идеален для ноутбуков, планшетов и смартфонов.",
			Price:       1200,
			Category:    "аксессуары",
			Poster:      "/assets/imgs/hdmirexant.webp",
			Image:       "/assets/imgs/hdmirexant.webp",
		},
	}

	for _, p := range products {
		var count int64
		if err := tx.Table("products").Where("title = ?", p.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := tx.Exec(
			"INSERT INTO products (title, description, price, price_unit, category, video, poster, image) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			p.Title, p.Description, p.Price, "рублей", p.Category, p.Video, p.Poster, p.Image,
		).Error; err != nil {
			return err
		}
	}

	var musicCount int64
	if err := tx.Table("music").Count(&musicCount).Error; err != nil {
		return err
	}
	if musicCount > 0 {
		return nil
	}

	tracks := []struct {
		Title string
		Price float64
		Image string
		Audio string
	}{
		{Title: "Дора - Кьют рок", Price: 19, Image: "/assets/imgs/dora-kiut-rok.webp", Audio: "/assets/audios/dora-kiut-rok.mp3"},
		{Title: "Дора - Втюрилась", Price: 19, Image: "/assets/imgs/dora-kiut-rok.webp", Audio: "/assets/audios/dora-vturilas.mp3"},
	}
	for _, t := range tracks {
		if err := tx.Exec(
			"INSERT INTO music (title, price, price_unit, image, audio) VALUES (?, ?, ?, ?, ?)",
			t.Title, t.Price, "рублей", t.Image, t.Audio,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
