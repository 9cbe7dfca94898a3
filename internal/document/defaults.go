package document

import "time"

// NewProduct returns a product with every defaulted field filled.
// Decoding a product starts from this value, so absent JSON keys keep
// these defaults.
func NewProduct() Product {
	return Product{
		MinStock:    5,
		MaxStock:    100,
		Unit:        "piece",
		Status:      "active",
		LastUpdated: time.Now().Format(ISOFormat),
	}
}

func NewCustomer() Customer {
	return Customer{
		Type:     "Regular",
		Country:  "Kenya",
		Status:   "active",
		JoinDate: time.Now().Format(DateFormat),
	}
}

func NewTransaction() Transaction {
	return Transaction{
		Items:         []LineItem{},
		PaymentMethod: "Cash",
		Status:        "completed",
	}
}

func NewSupplier() Supplier {
	return Supplier{
		Products: []string{},
		Status:   "active",
	}
}

func NewNote() Note {
	now := time.Now().Format(ISOFormat)

	return Note{
		Category:  "General",
		Priority:  "medium",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewSettings() Settings {
	return Settings{
		TaxRate:     16.0,
		Currency:    "KES",
		CompanyName: "Business Suite Pro",
	}
}

// NewLineItem defaults quantity to 1 for items posted without one.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Default returns the built-in document used when no stored document
// exists, or when a stored collection is missing or the file is corrupt.
// It ships with sample inventory so a fresh install is navigable.
func Default() *Document {
	now := time.Now().Format(ISOFormat)

	return &Document{
		Products: []Product{
			{
				ID: 1, Name: "250ltrs open plastic Drum", Price: 2900, Stock: 10, Cost: 2000,
				Category: "Drums", Supplier: "Plastic Works Ltd", MinStock: 2, MaxStock: 50,
				Barcode: "DRUM250OP", Unit: "piece", SKU: "DRUM-001",
				Description: "High-quality 250-liter open plastic drum", Status: "active", LastUpdated: now,
			},
			{
				ID: 2, Name: "250lts close Drum", Price: 3000, Stock: 8, Cost: 2100,
				Category: "Drums", Supplier: "Plastic Works Ltd", MinStock: 2, MaxStock: 40,
				Barcode: "DRUM250CL", Unit: "piece", SKU: "DRUM-002",
				Description: "250-liter closed plastic drum", Status: "active", LastUpdated: now,
			},
			{
				ID: 3, Name: "170lts Drum", Price: 2200, Stock: 15, Cost: 1500,
				Category: "Drums", Supplier: "Container Solutions", MinStock: 3, MaxStock: 60,
				Barcode: "DRUM170", Unit: "piece", SKU: "DRUM-003",
				Description: "170-liter plastic drum", Status: "active", LastUpdated: now,
			},
			{
				ID: 4, Name: "120lts Plastic Drum", Price: 1500, Stock: 12, Cost: 1000,
				Category: "Drums", Supplier: "Container Solutions", MinStock: 5, MaxStock: 80,
				Barcode: "DRUM120", Unit: "piece", SKU: "DRUM-004",
				Description: "120-liter plastic drum", Status: "active", LastUpdated: now,
			},
			{
				ID: 5, Name: "80lts Plastic Drum", Price: 1000, Stock: 20, Cost: 700,
				Category: "Drums", Supplier: "Plastic Works Ltd", MinStock: 5, MaxStock: 100,
				Barcode: "DRUM80", Unit: "piece", SKU: "DRUM-005",
				Description: "80-liter plastic drum", Status: "active", LastUpdated: now,
			},
		},
		Transactions: []Transaction{
			{
				ID: 1, Date: "2024-01-15 10:30:00", Type: TransactionSale, Amount: 5800, Customer: "John Doe",
				Items:       []LineItem{{Name: "250ltrs open plastic Drum", Quantity: 2, Price: 2900}},
				Description: "2 drums sale", PaymentMethod: "M-Pesa", Status: "completed",
			},
			{
				ID: 2, Date: "2024-01-16 14:20:00", Type: TransactionPurchase, Amount: 4200, Supplier: "Plastic Works Ltd",
				Items:       []LineItem{},
				Description: "Restock drums", PaymentMethod: "Bank Transfer", Status: "completed",
			},
			{
				ID: 3, Date: "2024-01-17 09:15:00", Type: TransactionSale, Amount: 2200, Customer: "Jane Smith",
				Items:       []LineItem{{Name: "170lts Drum", Quantity: 1, Price: 2200}},
				Description: "Single drum sale", PaymentMethod: "Cash", Status: "completed",
			},
			{
				ID: 4, Date: "2024-01-18 11:45:00", Type: TransactionRefund, Amount: 1500, Customer: "John Doe",
				Items:       []LineItem{},
				Description: "Returned damaged drum", PaymentMethod: "M-Pesa", Status: "completed",
			},
			{
				ID: 5, Date: "2024-01-19 16:30:00", Type: TransactionExpense, Amount: 5000, Supplier: "Office Supplies Ltd",
				Items:       []LineItem{},
				Description: "Office rent", PaymentMethod: "Bank Transfer", Status: "completed",
			},
		},
		Customers: []Customer{
			{
				ID: 1, Name: "John Doe", Contact: "0712345678", Email: "john@example.com",
				TotalSpent: 5800, TotalOrders: 12, LastOrder: "2024-01-15", Type: "VIP",
				Address: "123 Main St, Nairobi", City: "Nairobi", Country: "Kenya",
				Status: "active", JoinDate: "2023-05-10",
			},
			{
				ID: 2, Name: "Jane Smith", Contact: "0723456789", Email: "jane@example.com",
				TotalSpent: 2200, TotalOrders: 5, LastOrder: "2024-01-17", Type: "Regular",
				Address: "456 Park Ave, Mombasa", City: "Mombasa", Country: "Kenya",
				Status: "active", JoinDate: "2023-08-22",
			},
			{
				ID: 3, Name: "Tech Solutions Ltd", Contact: "0734567890", Email: "info@techsolutions.co.ke",
				TotalSpent: 320000, TotalOrders: 8, LastOrder: "2024-01-12", Type: "Corporate",
				Address: "789 Business Park, Nairobi", City: "Nairobi", Country: "Kenya",
				Status: "active", JoinDate: "2023-03-15",
			},
			{
				ID: 4, Name: "Maria Garcia", Contact: "0745678901", Email: "maria@example.com",
				TotalSpent: 75000, TotalOrders: 3, LastOrder: "2023-12-05", Type: "Wholesale",
				Address: "101 Market St, Kisumu", City: "Kisumu", Country: "Kenya",
				Status: "inactive", JoinDate: "2023-10-01",
			},
			{
				ID: 5, Name: "Robert Kimani", Contact: "0756789012", Email: "robert@example.com",
				TotalSpent: 189000, TotalOrders: 7, LastOrder: "2024-01-14", Type: "Regular",
				Address: "202 River Rd, Nairobi", City: "Nairobi", Country: "Kenya",
				Status: "active", JoinDate: "2023-07-18",
			},
		},
		Suppliers: []Supplier{
			{
				ID: 1, Name: "Plastic Works Ltd", Contact: "David Wangari", Email: "david@plasticworks.co.ke",
				Phone:    "0711223344",
				Products: []string{"250ltrs open plastic Drum", "250lts close Drum", "80lts Plastic Drum"},
				Status:   "active", Address: "Industrial Area, Nairobi",
			},
			{
				ID: 2, Name: "Container Solutions", Contact: "Susan Atieno", Email: "susan@containers.co.ke",
				Phone:    "0722334455",
				Products: []string{"170lts Drum", "120lts Plastic Drum"},
				Status:   "active", Address: "Mombasa Road, Nairobi",
			},
			{
				ID: 3, Name: "Office Supplies Ltd", Contact: "James Omondi", Email: "james@officesupplies.co.ke",
				Phone:    "0733445566",
				Products: []string{"Office Furniture", "Stationery"},
				Status:   "active", Address: "Westlands, Nairobi",
			},
		},
		Notes: []Note{
			{
				ID: "1", Title: "Meeting with Plastic Works Ltd",
				Content:  "Discuss new product line and pricing for Q2 2024",
				Category: "Meeting", Priority: "high",
				CreatedAt: "2024-01-10T09:00:00", UpdatedAt: "2024-01-10T09:00:00",
			},
			{
				ID: "2", Title: "Inventory Audit",
				Content:  "Need to conduct physical inventory count by end of month",
				Category: "Task", Priority: "medium",
				CreatedAt: "2024-01-08T14:30:00", UpdatedAt: "2024-01-08T14:30:00",
			},
			{
				ID: "3", Title: "Marketing Campaign",
				Content:  "Plan for social media campaign targeting corporate clients",
				Category: "Idea", Priority: "low",
				CreatedAt: "2024-01-05T11:15:00", UpdatedAt: "2024-01-05T11:15:00",
			},
		},
		Settings: NewSettings(),
	}
}
