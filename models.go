package main

import "time"

// TransactionType represents an operation kind such as income or expense
type TransactionType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category represents a category bound to one transaction type
type Category struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TransactionTypeID string    `json:"transaction_type_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Subcategory represents a subcategory bound to one category
type Subcategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Status represents a record status such as business or personal
type Status struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NameRequest is the request body for creating or renaming a transaction type
// or a status
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryRequest is the request body for creating or updating a category
type CategoryRequest struct {
	Name              string `json:"name" binding:"required"`
	TransactionTypeID string `json:"transaction_type_id" binding:"required"`
}

// SubcategoryRequest is the request body for creating or updating a subcategory
type SubcategoryRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}
