package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var imageOutputPath string

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage saved images",
	Long:  `Save and retrieve named images. Images are stored as raw bytes.`,
}

var imageSaveCmd = &cobra.Command{
	Use:   "save [name] [file]",
	Short: "Save an image from a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runImageSave,
}

var imageGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Retrieve an image",
	Long: `Retrieve an image by name. Prints the base64-encoded content, or
writes the decoded bytes to a file with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageGet,
}

func init() {
	imageGetCmd.Flags().StringVarP(&imageOutputPath, "output", "o", "", "write decoded image bytes to this file")
	imageCmd.AddCommand(imageSaveCmd)
	imageCmd.AddCommand(imageGetCmd)
	rootCmd.AddCommand(imageCmd)
}

func runImageSave(cmd *cobra.Command, args []string) error {
	if imageService == nil {
		return errors.New("image service not configured")
	}

	name, path := args[0], args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading image file: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if err := imageService.Save(cmd.Context(), name, encoded); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}

	cmd.Printf("Image '%s' saved successfully\n", name)
	return nil
}

func runImageGet(cmd *cobra.Command, args []string) error {
	if imageService == nil {
		return errors.New("image service not configured")
	}

	encoded, err := imageService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("retrieving image: %w", err)
	}

	if imageOutputPath == "" {
		cmd.Println(encoded)
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decoding image content: %w", err)
	}
	if err := os.WriteFile(imageOutputPath, data, 0600); err != nil {
		return fmt.Errorf("writing image file: %w", err)
	}

	cmd.Printf("Wrote %d bytes to %s\n", len(data), imageOutputPath)
	return nil
}
