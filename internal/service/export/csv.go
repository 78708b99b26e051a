// Package export renders task listings for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

const dateLayout = "2006-01-02"

var header = []string{
	"Title",
	"Details",
	"Assigned",
	"Created At",
	"Deadline",
	"Status",
	"AttachmentsCount",
	"AttachmentLinks",
}

// WriteTasks streams the tasks as CSV. Embedded attachment payloads are not
// exported; their cells carry the "[embedded]" marker instead.
func WriteTasks(w io.Writer, tasks []*task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range tasks {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Format(dateLayout)
		}
		record := []string{
			t.Title,
			t.Details,
			t.AssignedName,
			t.CreatedAt.Format(dateLayout),
			deadline,
			string(t.Status),
			strconv.Itoa(len(t.Attachments)),
			attachmentLinks(t.Attachments),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func attachmentLinks(atts []task.Attachment) string {
	links := make([]string, 0, len(atts))
	for _, a := range atts {
		switch {
		case a.External:
			links = append(links, a.URL)
		case a.DataURL != "":
			links = append(links, "[embedded]")
		default:
			links = append(links, a.URL)
		}
	}
	return strings.Join(links, " | ")
}
