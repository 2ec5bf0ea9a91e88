package seeds

import "github.com/afrilink/platform_be/internal/models"

func Transactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "1",
			Type:        models.TransactionPayment,
			Amount:      2500,
			Description: "E-commerce Platform Development - Milestone 1",
			Client:      "Kwame Asante",
			Status:      models.TransactionStatusCompleted,
			Date:        "2024-01-15",
			ProjectID:   "1",
		},
		{
			ID:          "2",
			Type:        models.TransactionPayment,
			Amount:      1800,
			Description: "Mobile App UI/UX Design",
			Client:      "Fatima Okonkwo",
			Status:      models.TransactionStatusPending,
			Date:        "2024-01-14",
			ProjectID:   "2",
		},
		{
			ID:          "3",
			Type:        models.TransactionWithdrawal,
			Amount:      -1500,
			Description: "Bank Transfer to GTBank",
			Status:      models.TransactionStatusCompleted,
			Date:        "2024-01-12",
		},
		{
			ID:          "4",
			Type:        models.TransactionPayment,
			Amount:      600,
			Description: "WordPress Website Development",
			Client:      "Sarah Mwangi",
			Status:      models.TransactionStatusCompleted,
			Date:        "2024-01-10",
			ProjectID:   "3",
		},
	}
}
