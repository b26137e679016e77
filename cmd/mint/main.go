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
	// Mint address (from cmd/setup output)
	mintAddress = "YOUR_MINT_ADDRESS_HERE"

	// Amount to mint, in whole tokens (scaled by the mint's 6 decimals)
	mintAmount = 1_000_000

	// Recipient wallet; leave empty to mint to your own wallet
	recipientAddress = ""

	tokenDecimals = 6
)

func main() {
	fmt.Println("🪙 Minting PRPL tokens...")

	ctx := context.Background()

	wallet, err := workflow.LoadWallet()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("Wallet: %s\n", wallet.PublicKey())

	mint, err := solana.PublicKeyFromBase58(mintAddress)
	if err != nil {
		log.Fatalf("❌ Invalid mint address (copy it from the setup output): %v", err)
	}

	var recipient solana.PublicKey
	if recipientAddress != "" {
		recipient, err = solana.PublicKeyFromBase58(recipientAddress)
		if err != nil {
			log.Fatalf("❌ Invalid recipient address: %v", err)
		}
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

	result, err := workflow.MintTokens(ctx, client, workflow.MintParams{
		Mint:      mint,
		Recipient: recipient,
		Amount:    mintAmount,
		Decimals:  tokenDecimals,
		Authority: wallet,
	})
	if err != nil {
		log.Fatalf("❌ Error minting tokens: %v", err)
	}

	fmt.Println("✅ Tokens minted successfully!")
	fmt.Printf("Token Account: %s\n", result.TokenAccount)
	fmt.Printf("Minted:        %d PRPL (%d base units)\n", mintAmount, result.BaseAmount)
	fmt.Printf("Transaction:   %s\n", client.ExplorerURL(result.Signature.String()))
	if result.Balance != "" {
		fmt.Printf("💼 New token balance: %s PRPL\n", result.Balance)
	}
}
