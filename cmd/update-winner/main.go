package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"paragonpool/chainsol"
	"paragonpool/workflow"
)

// =====================================================
// CONFIGURATION - UPDATE THESE
// =====================================================
const (
	// New winner wallet address
	newWinnerAddress = "NEW_WINNER_WALLET_ADDRESS_HERE"

	// Transfer hook program (devnet deployment)
	hookProgramID = "HookLb6XLcGwzaVWxk9T8yWbmejbLX4xwUxRp1zipNN"
)

func main() {
	fmt.Println("🏆 Updating winner wallet...")

	ctx := context.Background()

	wallet, err := workflow.LoadWallet()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("Your wallet (authority): %s\n", wallet.PublicKey())
	fmt.Printf("New winner address:      %s\n", newWinnerAddress)

	hookProgram, err := solana.PublicKeyFromBase58(hookProgramID)
	if err != nil {
		log.Fatalf("❌ Invalid hook program address: %v", err)
	}

	client, err := chainsol.NewClient(ctx, chainsol.Config{
		RPCURL:  rpc.DevNet_RPC,
		WSURL:   rpc.DevNet_WS,
		Network: "devnet",
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}
	defer client.Close()

	result, err := workflow.UpdateWinner(ctx, client, workflow.UpdateWinnerParams{
		HookProgramID: hookProgram,
		NewWinner:     newWinnerAddress,
		Authority:     wallet,
	})
	if err != nil {
		log.Fatalf("❌ Error updating winner: %v", err)
	}

	fmt.Println("✅ Winner wallet updated successfully!")
	fmt.Println("\n📋 SUMMARY:")
	fmt.Println("=====================================")
	fmt.Printf("Hook Config PDA: %s\n", result.HookConfig)
	fmt.Printf("Authority:       %s\n", result.Authority)
	fmt.Printf("Previous Winner: %s\n", result.PreviousWinner)
	fmt.Printf("New Winner:      %s\n", result.NewWinner)
	fmt.Printf("Transaction:     %s\n", client.ExplorerURL(result.Signature.String()))
	fmt.Println("\n✨ The new winner will now receive 1% of all token transfers!")
}
