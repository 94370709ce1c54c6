package content

import "github.com/Zachkp/ee-portfolio/internal/models"

const cover = "/images/hs-imaging/cover.png"

var components = []models.Component{
	{Category: "FPGA board", Name: "Zynq-7000 (Zybo/Zed) or ZCU104", Notes: "DDR on-board; PCIe/10G on higher-end", Status: models.StatusToBuy},
	{Category: "High-speed link", Name: "10 GbE SFP+ FMC or PCIe", Notes: "choose based on board", Status: models.StatusToBuy},
	{Category: "Camera sensor", Name: "Sony Pregius IMX250 / onsemi PYTHON", Notes: "global shutter; LVDS/MIPI", Status: models.StatusToBuy},
	{Category: "Lens & lighting", Name: "C-mount lens + LED panel", Notes: "consistent exposure", Status: models.StatusToBuy},
	{Category: "Sync/trigger", Name: "PTP/trigger board", Notes: "timestamp alignment", Status: models.StatusToBuy},
	{Category: "Bench tools", Name: "12V PSU, scope/LA, tripod/fixtures", Status: models.StatusToBuy},
}

// Components returns the imaging project's parts inventory in display order.
func Components() []models.Component {
	return clone(components)
}

// ImagingPage returns the content of the high-speed imaging detail page.
func ImagingPage() models.ProjectPage {
	return models.ProjectPage{
		Path: DetailPath,
		Meta: models.Metadata{
			Title:       "High-Speed Imaging with FPGA — " + siteMeta.Title,
			Description: "Reusable FPGA vision engine: high-speed camera ingest, hardware feature extraction, 10 GbE/PCIe output.",
		},
		Hero: models.Hero{
			Cover:    cover,
			CoverAlt: "High-Speed Imaging FPGA cover",
			Title:    "High-Speed Imaging with FPGA",
			Subtitle: "Reusable Vision Engine",
			Summary: "Ingest high-speed camera streams, process edges/keypoints/motion in hardware, and stream compact " +
				"results via 10GbE/PCIe. Same platform, different pipelines for factory, robotics, and labs.",
			Chips: []string{"FPGA", "Vision", "High-Speed I/O", "DDR", "10GbE/PCIe"},
		},
		Purpose: models.Emphasis{
			Before: "Build a reusable, low-latency ",
			Strong: "FPGA vision engine",
			After: " that ingests high-speed camera streams, buffers safely in DDR, runs modular blocks " +
				"(edges, corners, motion) in hardware, and outputs reduced results over 10 GbE/PCIe. " +
				"Different users load different pipelines.",
		},
		WhatsNew: []models.Bullet{
			{Lead: "Deterministic latency:", Text: "pixels-in → features-out in microseconds."},
			{Lead: "Bandwidth reduction:", Text: "stream ROIs/keys/flow, not raw frames."},
			{Lead: "Reusable platform:", Text: "same hardware, different pipelines."},
			{Lead: "Industry fit:", Text: "mirrors real work in robotics, vision, and test."},
		},
		Components:     Components(),
		ComponentsNote: "Update the table by editing the component inventory in internal/content/imaging.go.",
		Architecture: []string{
			"Sensor ingest (MIPI/LVDS → AXI)",
			"DDR buffering (no drops; measured margins)",
			"Pluggable vision stage",
			"Reducer (ROIs / keypoints / flow / stats)",
			"10 GbE/PCIe output; optional PTP timestamps",
		},
		Toolbox: []models.Block{
			{Title: "Edges & Gradients", Text: "Sobel / Canny for clean outlines"},
			{Title: "Corners & Keypoints", Text: "FAST + ORB descriptors"},
			{Title: "Motion", Text: "Lucas–Kanade (sparse) / dense flow"},
			{Title: "Reducers", Text: "ROIs, keypoints+descriptors, flow vectors"},
		},
		UseCases: []models.Bullet{
			{Lead: "Factory:", Text: "Canny → blob/shape → stream defect ROIs"},
			{Lead: "Robotics:", Text: "FAST/ORB → LK flow → stream tracks (box + velocity)"},
			{Lead: "Lab:", Text: "threshold/edges → centroid/size → CSV time-series"},
		},
		Roadmap: []string{
			"CSI-2/LVDS bring-up → RAW10/12 unpack → checksum",
			"DDR buffering with stress-gen + checker (no under/over-runs)",
			"Vision v1 (Sobel/FAST) → v2 (ORB/LK flow) with latency/throughput/power",
			"10 GbE/PCIe streaming + timestamps; host viewer/API",
			"Benchmarks vs CPU/GPU (accuracy, latency, energy/FPS)",
		},
		References: []models.Link{
			{Label: "OpenCV Canny", Href: "https://docs.opencv.org/4.x/da/d22/tutorial_py_canny.html"},
			{Label: "FAST Corner (Rosten & Drummond)", Href: "https://www.edwardrosten.com/work/rosten_2006_machine.pdf"},
			{Label: "ORB (Rublee et al., 2011)", Href: "https://ieeexplore.ieee.org/document/6126544"},
			{Label: "Lucas–Kanade (CMU notes)", Href: "https://www.cs.cmu.edu/~16385/s17/Slides/11.1_Lucas_Kanade.pdf"},
			{Label: "OpenCV Optical Flow", Href: "https://docs.opencv.org/4.x/d4/dee/tutorial_optical_flow.html"},
			{Label: "AMD/Xilinx Vitis Vision", Href: "https://docs.amd.com/r/en-US/Vitis_Libraries/vision"},
			{Label: "AMD/Xilinx MIPI CSI-2 RX (PG232)", Href: "https://docs.amd.com/r/en-US/pg232-csi2-rx/MIPI-CSI-2-Receiver-Subsystem"},
			{Label: "IEEE-1588 PTP", Href: "https://www.ieee1588.com/"},
		},
	}
}
